package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"amor-service/internal/domain"
	"amor-service/internal/ports"
)

func newTestCache(t *testing.T) (*RedisRouteCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisRouteCache(client, time.Minute), mr
}

func TestRedisRouteCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	duration := 420.5
	distance := 5200.0
	target := int64(7)
	in := ports.CachedRoute{
		TargetPickupID: &target,
		Route: domain.Route{
			Path: []domain.Coordinates{
				{Lat: 23.76, Lng: 90.38},
				{Lat: 23.81, Lng: 90.41},
			},
			DurationSeconds: &duration,
			DistanceMeters:  &distance,
		},
	}

	if err := c.PutLatest(ctx, "c1", in); err != nil {
		t.Fatalf("put: %v", err)
	}

	out, ok, err := c.GetLatest(ctx, "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a cached route")
	}

	if out.TargetPickupID == nil || *out.TargetPickupID != 7 {
		t.Fatalf("target = %v, want 7", out.TargetPickupID)
	}
	if len(out.Route.Path) != 2 || out.Route.Path[0] != in.Route.Path[0] {
		t.Fatalf("path = %+v, want %+v", out.Route.Path, in.Route.Path)
	}
	if out.Route.DurationSeconds == nil || *out.Route.DurationSeconds != duration {
		t.Fatalf("duration = %v, want %v", out.Route.DurationSeconds, duration)
	}
}

func TestRedisRouteCacheDegradedRoute(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	// Straight-line fallback: no target, no metrics.
	in := ports.CachedRoute{Route: domain.TwoPointRoute(
		domain.Coordinates{Lat: 23.76, Lng: 90.38},
		domain.Coordinates{Lat: 23.81, Lng: 90.41},
	)}

	if err := c.PutLatest(ctx, "c1", in); err != nil {
		t.Fatalf("put: %v", err)
	}

	out, ok, err := c.GetLatest(ctx, "c1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if out.TargetPickupID != nil {
		t.Fatalf("target = %v, want nil", out.TargetPickupID)
	}
	if out.Route.DurationSeconds != nil || out.Route.DistanceMeters != nil {
		t.Fatal("metrics must stay unknown for a degraded route")
	}
}

func TestRedisRouteCacheMiss(t *testing.T) {
	c, _ := newTestCache(t)

	_, ok, err := c.GetLatest(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss for an unknown collector")
	}
}

func TestRedisRouteCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	in := ports.CachedRoute{Route: domain.TwoPointRoute(
		domain.Coordinates{Lat: 23.76, Lng: 90.38},
		domain.Coordinates{Lat: 23.81, Lng: 90.41},
	)}
	if err := c.PutLatest(ctx, "c1", in); err != nil {
		t.Fatalf("put: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	_, ok, err := c.GetLatest(ctx, "c1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected the entry to expire")
	}
}

func TestRedisRouteCacheRequiresCollectorID(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	if err := c.PutLatest(ctx, "", ports.CachedRoute{}); err == nil {
		t.Fatal("expected error for empty collector id")
	}
	if _, _, err := c.GetLatest(ctx, ""); err == nil {
		t.Fatal("expected error for empty collector id")
	}
}
