package domain

// Represents a drivable path between the collector and a target pickup.
// Path points are latitude-first. Duration and distance are nil when the
// routing service was unreachable and the route degraded to a straight line;
// an unknown metric is never replaced with a fabricated estimate.
type Route struct {
	Path            []Coordinates
	DurationSeconds *float64
	DistanceMeters  *float64
}

// TwoPointRoute is the degraded route used when the routing service fails:
// just the origin and the target, metrics unknown.
func TwoPointRoute(origin, target Coordinates) Route {
	return Route{Path: []Coordinates{origin, target}}
}
