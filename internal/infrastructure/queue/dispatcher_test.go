package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sparkmeet/dating-api/internal/core/ports"
)

type recordingNotifier struct {
	mu        sync.Mutex
	delivered []ports.MatchNotification
	fail      bool
}

func (n *recordingNotifier) NotifyMutualMatch(_ context.Context, notification ports.MatchNotification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.fail {
		return errors.New("relay unavailable")
	}
	n.delivered = append(n.delivered, notification)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.delivered)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met before deadline")
}

func TestDispatcher_Delivers(t *testing.T) {
	notifier := &recordingNotifier{}
	d := NewDispatcher(2, notifier, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.MatchNotification{RecipientEmail: "anna@example.com", LikerName: "Boris Ivanov", LikerEmail: "boris@example.com"})
	d.Enqueue(ports.MatchNotification{RecipientEmail: "boris@example.com", LikerName: "Anna Petrova", LikerEmail: "anna@example.com"})

	waitFor(t, func() bool { return notifier.count() == 2 })
}

func TestDispatcher_DeliveryFailureIsSwallowed(t *testing.T) {
	notifier := &recordingNotifier{fail: true}
	d := NewDispatcher(1, notifier, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Enqueue never blocks or panics on delivery failure; a later success
	// still goes through the same worker.
	d.Enqueue(ports.MatchNotification{RecipientEmail: "anna@example.com"})

	notifier.mu.Lock()
	notifier.fail = false
	notifier.mu.Unlock()

	d.Enqueue(ports.MatchNotification{RecipientEmail: "anna@example.com"})
	waitFor(t, func() bool { return notifier.count() == 1 })
}

func TestDispatcher_ShardIsStablePerRecipient(t *testing.T) {
	d := NewDispatcher(8, &recordingNotifier{}, zerolog.Nop())

	first := d.shardIndex("anna@example.com")
	for i := 0; i < 10; i++ {
		if d.shardIndex("anna@example.com") != first {
			t.Fatalf("shard index not stable")
		}
	}
}
