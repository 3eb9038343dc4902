package ports

import "context"

// MatchNotification is one "you have a mutual match" message to be delivered
// to a single recipient, naming the member who liked them back.
type MatchNotification struct {
	RecipientEmail string
	LikerName      string
	LikerEmail     string
}

// Notifier delivers match notifications. Implementations are best-effort:
// callers treat delivery failures as loggable, never as operation failures.
type Notifier interface {
	NotifyMutualMatch(ctx context.Context, n MatchNotification) error
}

// NotificationDispatcher accepts notifications for asynchronous delivery.
// Enqueue must not block the request path beyond bounded buffering and must
// never surface delivery errors to the caller.
type NotificationDispatcher interface {
	Enqueue(n MatchNotification)
}
