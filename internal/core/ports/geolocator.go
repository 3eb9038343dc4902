package ports

import (
	"context"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

// Geolocator resolves an IP address to geographic coordinates. A nil Location
// with a nil error means the address could not be resolved; registration
// proceeds without coordinates in that case.
type Geolocator interface {
	Locate(ctx context.Context, ip string) (*domain.Location, error)
}
