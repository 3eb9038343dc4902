package ports

import (
	"context"
	"time"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

// ClientRepository defines persistence for clients and their like history.
type ClientRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Client, error)
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	// List returns clients matching the gender, name, and creation-date
	// constraints of the filter. The distance constraint is evaluated by the
	// caller, which knows the requester's coordinates.
	List(ctx context.Context, filter domain.ClientFilter) ([]domain.Client, error)

	// ExistsLike reports whether at least one like from clientID to targetID
	// has been recorded.
	ExistsLike(ctx context.Context, clientID, targetID int64) (bool, error)
	RecordLike(ctx context.Context, clientID, targetID int64) error
	// CountLikesSince counts likes authored by clientID with a creation
	// timestamp at or after since.
	CountLikesSince(ctx context.Context, clientID int64, since time.Time) (int64, error)
}
