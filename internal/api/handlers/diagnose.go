package handlers

import (
	"log"
	"net/http"

	"amor-service/internal/api/dto"
	"amor-service/internal/ports"
)

// DiagnoseHandler proxies crop photos to the AI diagnosis provider.
type DiagnoseHandler struct {
	// Provider is nil when no API key is configured; the endpoint then
	// reports the feature as unavailable instead of failing requests.
	Provider ports.DiagnosisProvider
}

func (h *DiagnoseHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	if h.Provider == nil {
		writeError(w, r, http.StatusServiceUnavailable, "diagnosis is not configured")
		return
	}

	var req dto.DiagnoseRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if req.ImageBase64 == "" {
		writeError(w, r, http.StatusBadRequest, "image_base64 is required")
		return
	}

	result, err := h.Provider.Diagnose(r.Context(), req.ImageBase64, req.MimeType, req.Language)
	if err != nil {
		log.Printf("diagnose failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "could not analyze the image right now, try again in a moment")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.DiagnoseResponse{
		Model:  result.Model,
		Advice: result.Advice,
	})
}
