package services

import (
	"context"
	"testing"

	"amor-service/internal/adapters/routing"
	"amor-service/internal/domain"
)

func TestPlanRouteUsesProvider(t *testing.T) {
	provider := &routing.MockRouteProvider{}
	origin := domain.Coordinates{Lat: 23.76, Lng: 90.38}
	target := domain.Coordinates{Lat: 23.81, Lng: 90.41}

	route := PlanRoute(context.Background(), provider, origin, target)

	if provider.Calls != 1 {
		t.Fatalf("provider calls = %d, want 1", provider.Calls)
	}
	if len(route.Path) != 3 {
		t.Fatalf("path length = %d, want 3", len(route.Path))
	}
	if route.DurationSeconds == nil || *route.DurationSeconds != 60 {
		t.Fatalf("duration = %v, want 60", route.DurationSeconds)
	}
	if route.DistanceMeters == nil || *route.DistanceMeters != 1000 {
		t.Fatalf("distance = %v, want 1000", route.DistanceMeters)
	}
}

func TestPlanRouteFallsBackToStraightLine(t *testing.T) {
	provider := &routing.MockRouteProvider{Err: routing.ErrRoutingDown}
	origin := domain.Coordinates{Lat: 23.76, Lng: 90.38}
	target := domain.Coordinates{Lat: 23.81, Lng: 90.41}

	route := PlanRoute(context.Background(), provider, origin, target)

	if len(route.Path) != 2 {
		t.Fatalf("path length = %d, want 2", len(route.Path))
	}
	if route.Path[0] != origin || route.Path[1] != target {
		t.Fatalf("path = %v, want [origin, target]", route.Path)
	}
	if route.DurationSeconds != nil || route.DistanceMeters != nil {
		t.Fatal("degraded route must not carry fabricated metrics")
	}
}
