package routing

import (
	"context"
	"errors"

	"amor-service/internal/domain"
)

var ErrRoutingDown = errors.New("routing service unreachable")

// MockRouteProvider serves canned routes in tests. When Err is set every
// call fails, which exercises the straight-line fallback path.
type MockRouteProvider struct {
	Err   error
	Calls int
}

func (m *MockRouteProvider) GetRoute(ctx context.Context, origin, destination domain.Coordinates) (domain.Route, error) {
	m.Calls++
	if m.Err != nil {
		return domain.Route{}, m.Err
	}

	duration := 60.0
	distance := 1000.0
	mid := domain.Coordinates{Lat: (origin.Lat + destination.Lat) / 2, Lng: (origin.Lng + destination.Lng) / 2}
	return domain.Route{
		Path:            []domain.Coordinates{origin, mid, destination},
		DurationSeconds: &duration,
		DistanceMeters:  &distance,
	}, nil
}
