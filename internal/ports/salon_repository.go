package ports

import (
	"context"

	"amor-service/internal/domain"
)

// Port: boundary for Salon records and their waste declarations.
type SalonRepository interface {
	ListSalons(ctx context.Context) ([]*domain.Salon, error)
	GetSalon(ctx context.Context, id int64) (*domain.Salon, error)
	UpdateLocation(ctx context.Context, id int64, loc domain.Coordinates) error
	CreateWasteLog(ctx context.Context, log *domain.WasteLog) (*domain.WasteLog, error)
}

// Leaderboard inputs. Totals are merged in the service layer: seeded base
// weeks, salon weekly logs (keyed by the salon's profile id) and confirmed
// pickup quantities (keyed by salon row id).
type LeaderboardStore interface {
	SalonBases(ctx context.Context) ([]*domain.Salon, error)
	WeeklyLogTotals(ctx context.Context) (map[string]float64, error)
	PickupTotals(ctx context.Context) (map[int64]float64, error)
}
