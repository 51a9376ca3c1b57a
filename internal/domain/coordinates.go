package domain

// Geographic coordinates, latitude-first everywhere inside the system.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Return coordinates as [lon, lat] for external routing API compatibility.
// The routing service speaks longitude-first; this is the reprojection boundary.
func (c Coordinates) LonLat() []float64 { return []float64{c.Lng, c.Lat} }

// Valid reports whether the pair is a usable map position.
// The backing store keeps 0/0 for salons that never reported a location,
// so the null island is treated as missing rather than a real coordinate.
func (c Coordinates) Valid() bool {
	if c.Lat == 0 && c.Lng == 0 {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
