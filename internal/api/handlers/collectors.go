package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"amor-service/internal/api/dto"
	"amor-service/internal/domain"
	"amor-service/internal/ports"
	"amor-service/internal/services"
)

// CollectorHandler exposes the live routing surface for collectors:
// position reports, manual pickup selection and the current route.
type CollectorHandler struct {
	Dispatcher *services.Dispatcher
	Pickups    ports.PickupRepository
}

func collectorID(r *http.Request) string { return mux.Vars(r)["id"] }

// Position records a fresh fix and returns the replanned route.
func (h *CollectorHandler) Position(w http.ResponseWriter, r *http.Request) {
	var req dto.PositionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	pos := domain.Coordinates{Lat: req.Lat, Lng: req.Lng}
	if !pos.Valid() {
		writeError(w, r, http.StatusBadRequest, "lat/lng out of range")
		return
	}

	plan, err := h.Dispatcher.ReportPosition(r.Context(), collectorID(r), pos)
	if err != nil {
		log.Printf("report position failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPlanResponse(plan))
}

// PositionUnavailable handles devices without a usable location capability.
// The dispatcher publishes the fixed fallback coordinate once; this is a
// normal condition, never an error.
func (h *CollectorHandler) PositionUnavailable(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Dispatcher.ReportUnavailable(r.Context(), collectorID(r))
	if err != nil {
		log.Printf("report unavailable failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPlanResponse(plan))
}

// Select pins routing to one pending pickup (marker interaction).
func (h *CollectorHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	plan, err := h.Dispatcher.Select(r.Context(), collectorID(r), req.PickupID)
	switch {
	case errors.Is(err, domain.ErrPickupNotFound):
		writeError(w, r, http.StatusNotFound, "pickup not found")
		return
	case errors.Is(err, domain.ErrPickupAlreadyCompleted):
		writeError(w, r, http.StatusConflict, "pickup already completed")
		return
	case err != nil:
		log.Printf("select pickup failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPlanResponse(plan))
}

func (h *CollectorHandler) ClearSelection(w http.ResponseWriter, r *http.Request) {
	plan, err := h.Dispatcher.ClearSelection(r.Context(), collectorID(r))
	if err != nil {
		log.Printf("clear selection failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPlanResponse(plan))
}

// Route returns the most recent plan without forcing a replan.
func (h *CollectorHandler) Route(w http.ResponseWriter, r *http.Request) {
	plan, ok, err := h.Dispatcher.LatestPlan(r.Context(), collectorID(r))
	if err != nil {
		log.Printf("latest plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "no route planned yet")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.NewPlanResponse(plan))
}

// Summary returns the collection dashboard totals.
func (h *CollectorHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := services.BuildCollectorSummary(r.Context(), h.Pickups, collectorID(r))
	if err != nil {
		log.Printf("collector summary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.SummaryResponse{
		PendingCount:     summary.PendingCount,
		CompletedCount:   summary.CompletedCount,
		TotalCollectedKg: summary.TotalCollectedKg,
		EarningsBDT:      summary.EarningsBDT,
	})
}
