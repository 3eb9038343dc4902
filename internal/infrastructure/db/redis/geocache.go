package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sparkmeet/dating-api/internal/core/domain"
)

const defaultGeoTTL = 24 * time.Hour

// GeoCache caches IP geolocation results in Redis so repeated registrations
// from one address skip the external lookup.
// Key format: geo:<ip>
type GeoCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGeoCache(client *redis.Client, ttl time.Duration) *GeoCache {
	if ttl <= 0 {
		ttl = defaultGeoTTL
	}
	return &GeoCache{client: client, ttl: ttl}
}

// Get returns the cached location for ip, or (nil, nil) on a cache miss.
func (c *GeoCache) Get(ctx context.Context, ip string) (*domain.Location, error) {
	raw, err := c.client.Get(ctx, c.key(ip)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("geo cache get: %w", err)
	}

	var loc domain.Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		return nil, fmt.Errorf("geo cache decode: %w", err)
	}
	return &loc, nil
}

// Put stores a resolved location for ip (expires after the configured TTL).
func (c *GeoCache) Put(ctx context.Context, ip string, loc domain.Location) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("geo cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(ip), raw, c.ttl).Err()
}

func (c *GeoCache) key(ip string) string {
	return "geo:" + ip
}
