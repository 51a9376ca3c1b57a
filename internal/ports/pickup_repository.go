package ports

import (
	"context"
	"time"

	"amor-service/internal/domain"
)

// Port: boundary for reading and transitioning Pickup entities.
type PickupRepository interface {
	// Retrieve all pickups in the given status, newest first.
	ListByStatus(ctx context.Context, status domain.PickupStatus) ([]*domain.Pickup, error)
	// Retrieve completed pickups confirmed by one collector, newest first.
	ListCompletedByCollector(ctx context.Context, collectorID string) ([]*domain.Pickup, error)
	Get(ctx context.Context, id int64) (*domain.Pickup, error)
	// Transition pending -> completed exactly once, recording the actual
	// weight, completion time and confirming collector. Returns
	// domain.ErrPickupAlreadyCompleted if the pickup is not pending.
	Confirm(ctx context.Context, id int64, collectorID string, actualKg float64, completedAt time.Time) (*domain.Pickup, error)
	// Open a new pending pickup for a salon.
	Create(ctx context.Context, salonID int64, estimatedKg float64) (*domain.Pickup, error)
}
