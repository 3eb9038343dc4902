package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

func TestDistanceKm_KnownPairs(t *testing.T) {
	moscow := domain.Location{Latitude: 55.7558, Longitude: 37.6173}
	spb := domain.Location{Latitude: 59.9311, Longitude: 30.3609}

	d := domain.DistanceKm(moscow, spb)
	if math.Abs(d-634) > 10 {
		t.Fatalf("Moscow-SPb distance = %.1f km, expected ~634", d)
	}

	if d := domain.DistanceKm(moscow, moscow); d != 0 {
		t.Fatalf("distance to self = %f, expected 0", d)
	}
}

func TestClientService_List_DistanceFilter(t *testing.T) {
	repo := newStubClientRepo()
	requester := repo.add(domain.Client{
		FirstName: "Anna",
		Email:     "anna@example.com",
		Location:  &domain.Location{Latitude: 55.7558, Longitude: 37.6173},
	})
	// ~2 km from the requester.
	near := repo.add(domain.Client{
		FirstName: "Nina",
		Email:     "nina@example.com",
		Location:  &domain.Location{Latitude: 55.7700, Longitude: 37.6300},
	})
	// ~630 km away.
	repo.add(domain.Client{
		FirstName: "Far",
		Email:     "far@example.com",
		Location:  &domain.Location{Latitude: 59.9311, Longitude: 30.3609},
	})
	// No coordinates at all.
	repo.add(domain.Client{FirstName: "Nowhere", Email: "nowhere@example.com"})

	svc := NewClientService(repo, testLogger())

	clients, err := svc.List(context.Background(), requester, domain.ClientFilter{DistanceKm: 5})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}

	found := make(map[int64]bool)
	for _, c := range clients {
		found[c.ID] = true
	}
	if !found[near.ID] {
		t.Fatalf("expected nearby client in result")
	}
	// The requester themselves is within 0 km and stays listed; only the far
	// and coordinate-less clients are excluded.
	if len(clients) != 2 {
		t.Fatalf("expected 2 clients within 5 km, got %d", len(clients))
	}
}

func TestClientService_List_DistanceWithoutCoordinates(t *testing.T) {
	repo := newStubClientRepo()
	requester := repo.add(domain.Client{FirstName: "Anna", Email: "anna@example.com"})

	svc := NewClientService(repo, testLogger())

	if _, err := svc.List(context.Background(), requester, domain.ClientFilter{DistanceKm: 5}); !errors.Is(err, domain.ErrInvalidFilter) {
		t.Fatalf("expected ErrInvalidFilter, got %v", err)
	}
}

func TestClientService_List_NameSubstring(t *testing.T) {
	repo := newStubClientRepo()
	requester := repo.add(domain.Client{FirstName: "Zoe", Email: "zoe@example.com"})
	repo.add(domain.Client{FirstName: "Anna", Email: "anna@example.com"})
	repo.add(domain.Client{FirstName: "Diana", Email: "diana@example.com"})
	repo.add(domain.Client{FirstName: "Boris", Email: "boris@example.com"})

	svc := NewClientService(repo, testLogger())

	clients, err := svc.List(context.Background(), requester, domain.ClientFilter{FirstName: "an"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	names := make(map[string]bool)
	for _, c := range clients {
		names[c.FirstName] = true
	}
	if !names["Anna"] || !names["Diana"] || len(clients) != 2 {
		t.Fatalf("expected Anna and Diana, got %v", names)
	}
}
