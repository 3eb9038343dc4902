package ports

import (
	"context"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

type MatchService interface {
	// Like records actor's interest in the target client and reports whether
	// the interest is mutual.
	Like(ctx context.Context, actor *domain.Client, targetID int64) (*domain.MatchResult, error)
}

type ClientService interface {
	// List returns client profiles matching the filter, evaluated relative to
	// the requesting client for the distance constraint.
	List(ctx context.Context, requester *domain.Client, filter domain.ClientFilter) ([]domain.Client, error)
}
