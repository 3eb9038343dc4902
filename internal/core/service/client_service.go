package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/sparkmeet/dating-api/internal/core/domain"
	"github.com/sparkmeet/dating-api/internal/core/ports"
)

// ClientService serves filtered profile listings.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

// List returns profiles matching the filter. Gender, name, and creation-date
// constraints are evaluated by the repository; the distance constraint is
// evaluated here against the requester's coordinates. A distance filter from
// a requester without coordinates fails with domain.ErrInvalidFilter. Listed
// clients without coordinates are excluded by a distance filter.
func (s *ClientService) List(ctx context.Context, requester *domain.Client, filter domain.ClientFilter) ([]domain.Client, error) {
	if filter.DistanceKm > 0 && requester.Location == nil {
		return nil, domain.ErrInvalidFilter
	}

	clients, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.DistanceKm <= 0 {
		return clients, nil
	}

	within := make([]domain.Client, 0, len(clients))
	for _, c := range clients {
		if c.Location == nil {
			continue
		}
		if domain.DistanceKm(*requester.Location, *c.Location) <= filter.DistanceKm {
			within = append(within, c)
		}
	}
	return within, nil
}
