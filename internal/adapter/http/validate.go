package httpadapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

type validateRequest struct {
	URL          string `json:"url"`
	Requirements string `json:"requirements"`
}

// handleValidate delegates to the external content validator. Non-YouTube
// URLs are rejected locally without an upstream call; upstream failures
// produce HTTP 502.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	videoURL := strings.TrimSpace(req.URL)
	requirements := strings.TrimSpace(req.Requirements)
	if videoURL == "" || requirements == "" {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "url and requirements are required"})
		return
	}
	if !domain.IsYouTubeHost(videoURL) {
		h.writeJSON(w, http.StatusOK, port.ValidationResult{
			Valid:       false,
			Explanation: "URL must be a valid YouTube video URL",
		})
		return
	}
	result, err := h.validator.Validate(r.Context(), videoURL, requirements)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}
