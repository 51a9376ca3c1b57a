package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"amor-service/internal/api/dto"
	"amor-service/internal/domain"
	"amor-service/internal/ports"
	"amor-service/internal/services"
)

// PickupHandler exposes pickup listing and confirmation.
type PickupHandler struct {
	Repo ports.PickupRepository
}

func (h *PickupHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.PickupStatus(r.URL.Query().Get("status"))
	if status == "" {
		status = domain.PickupPending
	}
	if status != domain.PickupPending && status != domain.PickupCompleted {
		writeError(w, r, http.StatusBadRequest, "status must be pending or completed")
		return
	}

	var (
		pickups []*domain.Pickup
		err     error
	)

	// Completed pickups are scoped to one collector, matching the dashboard:
	// every collector sees all pending jobs but only their own history.
	if status == domain.PickupCompleted {
		collectorID := r.URL.Query().Get("collector_id")
		if collectorID == "" {
			writeError(w, r, http.StatusBadRequest, "collector_id is required for completed pickups")
			return
		}
		pickups, err = h.Repo.ListCompletedByCollector(r.Context(), collectorID)
	} else {
		pickups, err = h.Repo.ListByStatus(r.Context(), status)
	}
	if err != nil {
		log.Printf("list pickups failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPickupsResponse{Pickups: make([]dto.PickupResponse, 0, len(pickups))}
	for _, p := range pickups {
		res.Pickups = append(res.Pickups, dto.NewPickupResponse(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Confirm transitions a pending pickup to completed with the actual weight.
func (h *PickupHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid pickup id")
		return
	}

	var req dto.ConfirmPickupRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.CollectorID == "" {
		writeError(w, r, http.StatusBadRequest, "collector_id is required")
		return
	}

	p, err := services.ConfirmPickup(r.Context(), h.Repo, id, req.CollectorID, req.ActualWeightKg, time.Now())
	switch {
	case errors.Is(err, services.ErrInvalidWeight):
		writeError(w, r, http.StatusBadRequest, "actual_weight_kg must be greater than zero")
		return
	case errors.Is(err, domain.ErrPickupNotFound):
		writeError(w, r, http.StatusNotFound, "pickup not found")
		return
	case errors.Is(err, domain.ErrPickupAlreadyCompleted):
		writeError(w, r, http.StatusConflict, "pickup already completed")
		return
	case err != nil:
		log.Printf("confirm pickup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPickupResponse(p))
}
