package services

import (
	"context"
	"errors"
	"fmt"

	"amor-service/internal/domain"
	"amor-service/internal/ports"
)

var ErrInvalidLogWeight = errors.New("logged weight must be greater than zero")

// LogWaste records a salon's weekly waste declaration and opens a pending
// pickup for the same quantity so collectors see the job immediately.
func LogWaste(
	ctx context.Context,
	salons ports.SalonRepository,
	pickups ports.PickupRepository,
	salonID int64,
	weightKg float64,
	photoURL string,
) (*domain.WasteLog, *domain.Pickup, error) {
	if weightKg <= 0 {
		return nil, nil, ErrInvalidLogWeight
	}

	if _, err := salons.GetSalon(ctx, salonID); err != nil {
		return nil, nil, fmt.Errorf("log waste: salon %d: %w", salonID, err)
	}

	entry, err := salons.CreateWasteLog(ctx, &domain.WasteLog{
		SalonID:  salonID,
		WeightKg: weightKg,
		PhotoURL: photoURL,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("log waste: create log: %w", err)
	}

	pickup, err := pickups.Create(ctx, salonID, weightKg)
	if err != nil {
		return nil, nil, fmt.Errorf("log waste: open pickup: %w", err)
	}

	return entry, pickup, nil
}
