// Package geoip resolves client IP addresses to coordinates using the
// ip-api.com JSON endpoint, with an optional Redis-backed cache in front.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

const (
	defaultBaseURL = "http://ip-api.com/json"
	defaultTimeout = 5 * time.Second
)

// Cache is the subset of the Redis geo cache the locator needs.
type Cache interface {
	Get(ctx context.Context, ip string) (*domain.Location, error)
	Put(ctx context.Context, ip string, loc domain.Location) error
}

type Locator struct {
	baseURL string
	client  *http.Client
	cache   Cache
	logger  zerolog.Logger
}

func NewLocator(baseURL string, timeout time.Duration, cache Cache, logger zerolog.Logger) *Locator {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Locator{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		cache:   cache,
		logger:  logger,
	}
}

type lookupResponse struct {
	Status string  `json:"status"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// Locate resolves ip to coordinates. A cache hit skips the provider call;
// cache errors are logged and treated as misses. A provider response without
// coordinates yields (nil, nil): the address is simply unresolvable.
func (l *Locator) Locate(ctx context.Context, ip string) (*domain.Location, error) {
	if l.cache != nil {
		cached, err := l.cache.Get(ctx, ip)
		if err != nil {
			l.logger.Warn().Err(err).Str("ip", ip).Msg("geo cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.baseURL+"/"+ip, nil)
	if err != nil {
		return nil, fmt.Errorf("geoip request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geoip lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geoip lookup: unexpected status %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geoip decode: %w", err)
	}
	if body.Status != "success" {
		return nil, nil
	}

	loc := domain.Location{Latitude: body.Lat, Longitude: body.Lon}
	if l.cache != nil {
		if err := l.cache.Put(ctx, ip, loc); err != nil {
			l.logger.Warn().Err(err).Str("ip", ip).Msg("geo cache write failed")
		}
	}
	return &loc, nil
}
