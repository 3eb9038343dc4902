package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sparkmeet/dating-api/internal/api/metrics"
	"github.com/sparkmeet/dating-api/internal/core/domain"
	"github.com/sparkmeet/dating-api/internal/core/ports"
)

// MatchService records directed likes and detects mutual matches.
type MatchService struct {
	repo       ports.ClientRepository
	gate       *RateGate
	dispatcher ports.NotificationDispatcher
	logger     zerolog.Logger
}

func NewMatchService(repo ports.ClientRepository, gate *RateGate, dispatcher ports.NotificationDispatcher, logger zerolog.Logger) *MatchService {
	return &MatchService{repo: repo, gate: gate, dispatcher: dispatcher, logger: logger}
}

// Like records actor's interest in targetID.
//
// The rate gate runs first, before anything persists. The mutual-check read
// happens before the like write, and the like is recorded on both branches so
// the like log stays a complete append-only history. Notifications are only
// enqueued after the write has returned; the match must be durable before
// either party hears about it.
func (s *MatchService) Like(ctx context.Context, actor *domain.Client, targetID int64) (*domain.MatchResult, error) {
	if err := s.gate.Admit(ctx, actor.ID); err != nil {
		return nil, err
	}

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, domain.ErrTargetNotFound
		}
		return nil, err
	}

	mutual, err := s.repo.ExistsLike(ctx, targetID, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("mutual check: %w", err)
	}

	if err := s.repo.RecordLike(ctx, actor.ID, targetID); err != nil {
		return nil, fmt.Errorf("record like: %w", err)
	}

	if !mutual {
		metrics.LikesRecordedTotal.WithLabelValues(domain.MatchStatusPending).Inc()
		s.logger.Info().Int64("client_id", actor.ID).Int64("target_id", targetID).Msg("like recorded")
		return &domain.MatchResult{
			Status:  domain.MatchStatusPending,
			Message: "Your like has been recorded.",
		}, nil
	}

	// Both parties get a message naming the other; delivery failures are the
	// dispatcher's problem, the match already persisted.
	s.dispatcher.Enqueue(ports.MatchNotification{
		RecipientEmail: target.Email,
		LikerName:      actor.DisplayName(),
		LikerEmail:     actor.Email,
	})
	s.dispatcher.Enqueue(ports.MatchNotification{
		RecipientEmail: actor.Email,
		LikerName:      target.DisplayName(),
		LikerEmail:     target.Email,
	})

	metrics.LikesRecordedTotal.WithLabelValues(domain.MatchStatusMutual).Inc()
	s.logger.Info().Int64("client_id", actor.ID).Int64("target_id", targetID).Msg("mutual match")

	return &domain.MatchResult{
		Status:      domain.MatchStatusMutual,
		Message:     fmt.Sprintf("You have a mutual match with %s!", target.DisplayName()),
		TargetName:  target.DisplayName(),
		TargetEmail: target.Email,
	}, nil
}
