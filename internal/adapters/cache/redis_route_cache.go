package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"amor-service/internal/domain"
	"amor-service/internal/ports"
)

// RedisRouteCache keeps the most recent planned route per collector so a
// reconnecting client can redraw immediately. Entries expire on their own;
// a route is view state, not a record.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &RedisRouteCache{client: client, ttl: ttl}
}

type cachedRoutePayload struct {
	TargetPickupID  *int64      `json:"target_pickup_id,omitempty"`
	Path            [][]float64 `json:"path"`
	DurationSeconds *float64    `json:"duration_seconds,omitempty"`
	DistanceMeters  *float64    `json:"distance_meters,omitempty"`
}

func routeKey(collectorID string) string { return "route:latest:" + collectorID }

func (c *RedisRouteCache) PutLatest(ctx context.Context, collectorID string, r ports.CachedRoute) error {
	if collectorID == "" {
		return errors.New("route cache: collector id must be non-empty")
	}

	payload := cachedRoutePayload{
		TargetPickupID:  r.TargetPickupID,
		DurationSeconds: r.Route.DurationSeconds,
		DistanceMeters:  r.Route.DistanceMeters,
		Path:            make([][]float64, 0, len(r.Route.Path)),
	}
	for _, p := range r.Route.Path {
		payload.Path = append(payload.Path, []float64{p.Lat, p.Lng})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("route cache: marshal: %w", err)
	}

	if err := c.client.Set(ctx, routeKey(collectorID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("route cache: set: %w", err)
	}

	return nil
}

func (c *RedisRouteCache) GetLatest(ctx context.Context, collectorID string) (ports.CachedRoute, bool, error) {
	if collectorID == "" {
		return ports.CachedRoute{}, false, errors.New("route cache: collector id must be non-empty")
	}

	raw, err := c.client.Get(ctx, routeKey(collectorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.CachedRoute{}, false, nil
	}
	if err != nil {
		return ports.CachedRoute{}, false, fmt.Errorf("route cache: get: %w", err)
	}

	var payload cachedRoutePayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ports.CachedRoute{}, false, fmt.Errorf("route cache: unmarshal: %w", err)
	}

	out := ports.CachedRoute{
		TargetPickupID: payload.TargetPickupID,
		Route: domain.Route{
			DurationSeconds: payload.DurationSeconds,
			DistanceMeters:  payload.DistanceMeters,
		},
	}
	for i, pt := range payload.Path {
		if len(pt) != 2 {
			return ports.CachedRoute{}, false, fmt.Errorf("route cache: invalid point at index %d", i)
		}
		out.Route.Path = append(out.Route.Path, domain.Coordinates{Lat: pt[0], Lng: pt[1]})
	}

	return out, true, nil
}
