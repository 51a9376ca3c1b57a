package ports

import (
	"context"

	"amor-service/internal/domain"
)

// Latest planned route for a collector, kept as ephemeral view state.
type CachedRoute struct {
	TargetPickupID *int64
	Route          domain.Route
}

// Port: short-lived storage for the most recent route per collector so a
// reconnecting client can redraw without forcing a replan.
type RouteCache interface {
	PutLatest(ctx context.Context, collectorID string, r CachedRoute) error
	// The boolean is false when no route is cached for the collector.
	GetLatest(ctx context.Context, collectorID string) (CachedRoute, bool, error)
}
