package ports

import (
	"context"

	"amor-service/internal/domain"
)

// Contract for retrieving a drivable path between two coordinates from an
// external routing service. Implementations return an error on any failure
// (network, malformed response, empty geometry); degrading to a straight
// line is the caller's policy, not the provider's.
type RouteProvider interface {
	GetRoute(ctx context.Context, origin, destination domain.Coordinates) (domain.Route, error)
}
