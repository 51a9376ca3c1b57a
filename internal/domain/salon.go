package domain

import "errors"

var ErrSalonNotFound = errors.New("salon not found")

// Partner salon supplying waste for fertilizer production.
type Salon struct {
	ID        int64
	ProfileID string
	Name      string
	Address   string
	Phone     string
	Location  Coordinates
	// Seeded per-week baseline kilograms carried over from onboarding;
	// leaderboard totals start from their sum.
	BaseWeeksKg [4]float64
}

func (s *Salon) BaseTotalKg() float64 {
	var total float64
	for _, kg := range s.BaseWeeksKg {
		total += kg
	}
	return total
}

// A salon's weekly waste declaration. Logging waste also opens a pending
// pickup so collectors can schedule a visit.
type WasteLog struct {
	ID       int64
	SalonID  int64
	WeightKg float64
	PhotoURL string
}
