package domain

import (
	"errors"
	"time"
)

type PickupStatus string

const (
	PickupPending   PickupStatus = "pending"
	PickupCompleted PickupStatus = "completed"
)

var (
	ErrPickupNotFound         = errors.New("pickup not found")
	ErrPickupAlreadyCompleted = errors.New("pickup already completed")
)

// Represents a single waste-collection job tied to a salon location.
// The estimated weight is logged by the salon; the actual weight is recorded
// exactly once, when a collector confirms the pickup.
type Pickup struct {
	ID          int64
	SalonID     int64
	SalonName   string
	Address     string
	Location    Coordinates
	EstimatedKg float64
	ActualKg    *float64
	Status      PickupStatus
	CollectorID *string
	ScheduledAt *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
}
