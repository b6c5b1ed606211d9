package httpadapter

import (
	"crypto/subtle"
	"net/http"
)

// authorizeCron checks the bearer shared secret gating the sweep
// endpoints. An unconfigured secret fails closed.
func (h *Handler) authorizeCron(r *http.Request) bool {
	if h.cronSecret == "" {
		return false
	}
	auth := r.Header.Get("Authorization")
	want := "Bearer " + h.cronSecret
	return subtle.ConstantTimeCompare([]byte(auth), []byte(want)) == 1
}

// handleCronUpdateViews is the hourly sweep entry point. It always returns
// 200 with aggregate counts once the run started; callers must inspect the
// counts to detect partial failure.
func (h *Handler) handleCronUpdateViews(w http.ResponseWriter, r *http.Request) {
	if !h.authorizeCron(r) {
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
		return
	}
	rep, err := h.sweeps.UpdateViews(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rep)
}

// handleCronAutoDistribute is the daily sweep entry point.
func (h *Handler) handleCronAutoDistribute(w http.ResponseWriter, r *http.Request) {
	if !h.authorizeCron(r) {
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthorized"})
		return
	}
	rep, err := h.sweeps.AutoDistribute(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rep)
}
