package services

import (
	"math"

	"amor-service/internal/domain"
)

const earthRadiusMeters = 6371000.0

// HaversineMeters returns the great-circle distance between two coordinates.
func HaversineMeters(a, b domain.Coordinates) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)

	h := sinLat*sinLat +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*sinLng*sinLng

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// SelectNearest returns the pending pickup closest to the collector by
// straight-line distance. Pickups without a valid coordinate are skipped.
// Ties resolve to the first pickup in input order (strict less-than, no sort).
// Returns nil when no pickup has a usable coordinate; that is a normal
// terminal state, not an error.
func SelectNearest(pickups []*domain.Pickup, position domain.Coordinates) *domain.Pickup {
	var best *domain.Pickup
	bestDist := math.MaxFloat64

	for _, p := range pickups {
		if !p.Location.Valid() {
			continue
		}
		if d := HaversineMeters(position, p.Location); d < bestDist {
			bestDist = d
			best = p
		}
	}

	return best
}
