package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"amor-service/internal/domain"
	"amor-service/internal/ports"
)

var ErrInvalidWeight = errors.New("actual weight must be greater than zero")

// ConfirmPickup transitions a pending pickup to completed exactly once,
// recording the actual collected weight (which may differ from the salon's
// estimate), the completion time and the confirming collector.
//
// Invalid input is rejected before any store write; a pickup that is already
// completed fails with domain.ErrPickupAlreadyCompleted without mutating
// state. Nothing is updated optimistically: on a store failure the pickup
// stays pending.
func ConfirmPickup(
	ctx context.Context,
	repo ports.PickupRepository,
	pickupID int64,
	collectorID string,
	actualWeightKg float64,
	now time.Time,
) (*domain.Pickup, error) {
	if actualWeightKg <= 0 {
		return nil, ErrInvalidWeight
	}
	if collectorID == "" {
		return nil, errors.New("confirm pickup: collector id must be non-empty")
	}

	p, err := repo.Confirm(ctx, pickupID, collectorID, actualWeightKg, now.UTC())
	if err != nil {
		return nil, fmt.Errorf("confirm pickup %d: %w", pickupID, err)
	}

	return p, nil
}
