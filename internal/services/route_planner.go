package services

import (
	"context"
	"log"

	"amor-service/internal/domain"
	"amor-service/internal/ports"
)

// PlanRoute requests a drivable path from the collector's position to the
// target pickup. The routing service is treated as unreliable: any failure
// or empty geometry degrades to the straight two-point line [origin, target]
// with duration and distance unknown. That degradation is silent for the
// user (logged only); it is an accepted fallback, not an error condition.
func PlanRoute(
	ctx context.Context,
	provider ports.RouteProvider,
	origin domain.Coordinates,
	target domain.Coordinates,
) domain.Route {
	route, err := provider.GetRoute(ctx, origin, target)
	if err != nil {
		log.Printf("plan route: routing service unavailable, using straight line: %v", err)
		return domain.TwoPointRoute(origin, target)
	}

	if len(route.Path) == 0 {
		log.Printf("plan route: routing service returned empty geometry, using straight line")
		return domain.TwoPointRoute(origin, target)
	}

	return route
}
