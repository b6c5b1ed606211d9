package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"clipfund/internal/core/port"
)

type errorBody struct {
	Error string `json:"error"`
}

// writeJSON encodes v as the response body with the given status.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps a use-case error onto the HTTP taxonomy. Unknown errors
// are logged and reported as an opaque 500.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrCampaignNotFound), errors.Is(err, port.ErrUserNotFound):
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, port.ErrWalletUnknown):
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, port.ErrNotCreator):
		h.writeJSON(w, http.StatusForbidden, errorBody{Error: err.Error()})
	case errors.Is(err, port.ErrDuplicateSubmission):
		h.writeJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	case port.IsValidation(err):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, port.ErrUpstream):
		h.writeJSON(w, http.StatusBadGateway, errorBody{Error: err.Error()})
	default:
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}
