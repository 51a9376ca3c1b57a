package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"amor-service/internal/api/dto"
	"amor-service/internal/domain"
	"amor-service/internal/ports"
	"amor-service/internal/services"
)

// SalonHandler exposes salon listing, location updates and waste logging.
type SalonHandler struct {
	Salons  ports.SalonRepository
	Pickups ports.PickupRepository
}

func (h *SalonHandler) List(w http.ResponseWriter, r *http.Request) {
	salons, err := h.Salons.ListSalons(r.Context())
	if err != nil {
		log.Printf("list salons failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSalonsResponse{Salons: make([]dto.SalonResponse, 0, len(salons))}
	for _, s := range salons {
		res.Salons = append(res.Salons, dto.NewSalonResponse(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// UpdateLocation stores a salon's self-reported shop coordinates.
func (h *SalonHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid salon id")
		return
	}

	var req dto.UpdateLocationRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	loc := domain.Coordinates{Lat: req.Lat, Lng: req.Lng}
	if !loc.Valid() {
		writeError(w, r, http.StatusBadRequest, "lat/lng out of range")
		return
	}

	err = h.Salons.UpdateLocation(r.Context(), id, loc)
	switch {
	case errors.Is(err, domain.ErrSalonNotFound):
		writeError(w, r, http.StatusNotFound, "salon not found")
		return
	case err != nil:
		log.Printf("update salon location failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

// LogWaste records a weekly waste declaration and opens a pending pickup.
func (h *SalonHandler) LogWaste(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid salon id")
		return
	}

	var req dto.WasteLogRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	entry, pickup, err := services.LogWaste(r.Context(), h.Salons, h.Pickups, id, req.WeightKg, req.PhotoURL)
	switch {
	case errors.Is(err, services.ErrInvalidLogWeight):
		writeError(w, r, http.StatusBadRequest, "weight_kg must be greater than zero")
		return
	case errors.Is(err, domain.ErrSalonNotFound):
		writeError(w, r, http.StatusNotFound, "salon not found")
		return
	case err != nil:
		log.Printf("log waste failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.WasteLogResponse{
		LogID:  entry.ID,
		Pickup: dto.NewPickupResponse(pickup),
	})
}

// LeaderboardHandler ranks salons by total contributed kilograms.
type LeaderboardHandler struct {
	Store ports.LeaderboardStore
}

func (h *LeaderboardHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := services.BuildLeaderboard(r.Context(), h.Store)
	if err != nil {
		log.Printf("leaderboard failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.LeaderboardResponse{Entries: make([]dto.LeaderboardEntryResponse, 0, len(entries))}
	for i, e := range entries {
		res.Entries = append(res.Entries, dto.LeaderboardEntryResponse{
			Rank:    i + 1,
			SalonID: e.SalonID,
			Name:    e.Name,
			TotalKg: e.TotalKg,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
