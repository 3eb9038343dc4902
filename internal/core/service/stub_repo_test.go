package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sparkmeet/dating-api/internal/core/domain"
	"github.com/sparkmeet/dating-api/internal/core/ports"
)

// stubClientRepo is an in-memory ClientRepository for service tests.
type stubClientRepo struct {
	clients map[int64]*domain.Client
	likes   []domain.Like
	nextID  int64
}

func newStubClientRepo() *stubClientRepo {
	return &stubClientRepo{clients: make(map[int64]*domain.Client), nextID: 1}
}

func (r *stubClientRepo) add(c domain.Client) *domain.Client {
	if c.ID == 0 {
		c.ID = r.nextID
	}
	if c.ID >= r.nextID {
		r.nextID = c.ID + 1
	}
	r.clients[c.ID] = &c
	return &c
}

func cloneClient(c *domain.Client) *domain.Client {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubClientRepo) FindByEmail(_ context.Context, email string) (*domain.Client, error) {
	for _, c := range r.clients {
		if c.Email == email {
			return cloneClient(c), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *stubClientRepo) FindByID(_ context.Context, id int64) (*domain.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return cloneClient(c), nil
}

func (r *stubClientRepo) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	for _, existing := range r.clients {
		if existing.Email == c.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	return cloneClient(r.add(*c)), nil
}

func (r *stubClientRepo) List(_ context.Context, f domain.ClientFilter) ([]domain.Client, error) {
	var out []domain.Client
	for _, c := range r.clients {
		if f.Gender != "" && c.Gender != f.Gender {
			continue
		}
		if f.FirstName != "" && !strings.Contains(strings.ToLower(c.FirstName), strings.ToLower(f.FirstName)) {
			continue
		}
		if f.LastName != "" && !strings.Contains(strings.ToLower(c.LastName), strings.ToLower(f.LastName)) {
			continue
		}
		if !f.CreatedAfter.IsZero() && c.CreatedAt.Before(f.CreatedAfter) {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClientRepo) ExistsLike(_ context.Context, clientID, targetID int64) (bool, error) {
	for _, l := range r.likes {
		if l.ClientID == clientID && l.TargetID == targetID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubClientRepo) RecordLike(_ context.Context, clientID, targetID int64) error {
	r.likes = append(r.likes, domain.Like{ClientID: clientID, TargetID: targetID, CreatedAt: time.Now().UTC()})
	return nil
}

func (r *stubClientRepo) CountLikesSince(_ context.Context, clientID int64, since time.Time) (int64, error) {
	var n int64
	for _, l := range r.likes {
		if l.ClientID == clientID && !l.CreatedAt.Before(since) {
			n++
		}
	}
	return n, nil
}

// stubDispatcher records enqueued notifications synchronously.
type stubDispatcher struct {
	notifications []ports.MatchNotification
}

func (d *stubDispatcher) Enqueue(n ports.MatchNotification) {
	d.notifications = append(d.notifications, n)
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
