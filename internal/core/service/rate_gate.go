package service

import (
	"context"
	"time"

	"github.com/sparkmeet/dating-api/internal/api/metrics"
	"github.com/sparkmeet/dating-api/internal/core/domain"
	"github.com/sparkmeet/dating-api/internal/core/ports"
)

const (
	defaultLikeWindow = 24 * time.Hour
	defaultLikeLimit  = 30
)

// RateGate throttles like actions per client over a trailing window. It is a
// gate, not a counter store: the count is derived from the append-only like
// history, so it stays consistent with the match engine by construction.
type RateGate struct {
	repo   ports.ClientRepository
	window time.Duration
	limit  int64
}

func NewRateGate(repo ports.ClientRepository, window time.Duration, limit int64) *RateGate {
	if window <= 0 {
		window = defaultLikeWindow
	}
	if limit <= 0 {
		limit = defaultLikeLimit
	}
	return &RateGate{repo: repo, window: window, limit: limit}
}

// Admit returns domain.ErrRateLimited when the client has already authored
// limit or more likes inside the trailing window. It must run before the
// current like is recorded, so the in-flight action does not count against
// its own quota.
func (g *RateGate) Admit(ctx context.Context, clientID int64) error {
	since := time.Now().UTC().Add(-g.window)
	count, err := g.repo.CountLikesSince(ctx, clientID, since)
	if err != nil {
		return err
	}
	if count >= g.limit {
		metrics.LikesRateLimitedTotal.Inc()
		return domain.ErrRateLimited
	}
	return nil
}
