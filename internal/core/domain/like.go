package domain

import "time"

// Match statuses returned by the match engine.
const (
	MatchStatusMutual  = "mutual"
	MatchStatusPending = "pending"
)

// Like is one directed "client liked target" edge. Likes are append-only:
// they are never updated or deleted, and a repeated like in the same
// direction appends a second record. A mutual match exists exactly when
// both directions have at least one record.
type Like struct {
	ClientID  int64     `json:"client_id"`
	TargetID  int64     `json:"target_id"`
	CreatedAt time.Time `json:"created_at"`
}

// MatchResult is the outcome of a like operation. TargetName and TargetEmail
// are populated on the mutual branch only.
type MatchResult struct {
	Status      string `json:"status"`
	Message     string `json:"message"`
	TargetName  string `json:"target_name,omitempty"`
	TargetEmail string `json:"target_email,omitempty"`
}
