package dto

import (
	"time"

	"amor-service/internal/domain"
)

type PickupResponse struct {
	ID          int64      `json:"id"`
	SalonID     int64      `json:"salon_id"`
	SalonName   string     `json:"salon_name"`
	Address     string     `json:"address"`
	Lat         float64    `json:"lat"`
	Lng         float64    `json:"lng"`
	EstimatedKg float64    `json:"estimated_kg"`
	ActualKg    *float64   `json:"actual_kg"`
	Status      string     `json:"status"`
	CollectorID *string    `json:"collector_id"`
	ScheduledAt *time.Time `json:"scheduled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ListPickupsResponse struct {
	Pickups []PickupResponse `json:"pickups"`
}

type ConfirmPickupRequest struct {
	CollectorID    string  `json:"collector_id"`
	ActualWeightKg float64 `json:"actual_weight_kg"`
}

func NewPickupResponse(p *domain.Pickup) PickupResponse {
	return PickupResponse{
		ID:          p.ID,
		SalonID:     p.SalonID,
		SalonName:   p.SalonName,
		Address:     p.Address,
		Lat:         p.Location.Lat,
		Lng:         p.Location.Lng,
		EstimatedKg: p.EstimatedKg,
		ActualKg:    p.ActualKg,
		Status:      string(p.Status),
		CollectorID: p.CollectorID,
		ScheduledAt: p.ScheduledAt,
		CompletedAt: p.CompletedAt,
		CreatedAt:   p.CreatedAt,
	}
}
