package dto

import "amor-service/internal/domain"

type SalonResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   string  `json:"phone"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type ListSalonsResponse struct {
	Salons []SalonResponse `json:"salons"`
}

type UpdateLocationRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type WasteLogRequest struct {
	WeightKg float64 `json:"weight_kg"`
	PhotoURL string  `json:"photo_url"`
}

type WasteLogResponse struct {
	LogID  int64          `json:"log_id"`
	Pickup PickupResponse `json:"pickup"`
}

type LeaderboardEntryResponse struct {
	Rank    int     `json:"rank"`
	SalonID int64   `json:"salon_id"`
	Name    string  `json:"name"`
	TotalKg float64 `json:"total_kg"`
}

type LeaderboardResponse struct {
	Entries []LeaderboardEntryResponse `json:"entries"`
}

func NewSalonResponse(s *domain.Salon) SalonResponse {
	return SalonResponse{
		ID:      s.ID,
		Name:    s.Name,
		Address: s.Address,
		Phone:   s.Phone,
		Lat:     s.Location.Lat,
		Lng:     s.Location.Lng,
	}
}
