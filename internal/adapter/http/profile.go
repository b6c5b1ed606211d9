package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type profileResponse struct {
	User        userJSON         `json:"user"`
	Campaigns   []campaignJSON   `json:"campaigns"`
	Submissions []submissionJSON `json:"submissions"`
}

// handleProfile returns the aggregate view of a wallet: its identity plus
// campaigns and submissions newest-first. Unknown wallets produce 404.
func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	wallet := chi.URLParam(r, "wallet")
	if wallet == "" {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "wallet address is required"})
		return
	}
	p, err := h.users.Profile(r.Context(), wallet)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := profileResponse{
		User:        toUserJSON(p.User),
		Campaigns:   make([]campaignJSON, 0, len(p.Campaigns)),
		Submissions: make([]submissionJSON, 0, len(p.Submissions)),
	}
	for _, c := range p.Campaigns {
		resp.Campaigns = append(resp.Campaigns, toCampaignJSON(c))
	}
	for _, s := range p.Submissions {
		resp.Submissions = append(resp.Submissions, toSubmissionWithCampaignJSON(s))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

type connectUserRequest struct {
	WalletAddress string  `json:"wallet_address"`
	Username      *string `json:"username"`
}

// handleConnectUser registers a wallet on first sight. It returns 201 when
// a new user was created and 200 when the wallet was already known.
func (h *Handler) handleConnectUser(w http.ResponseWriter, r *http.Request) {
	var req connectUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	u, created, err := h.users.Connect(r.Context(), req.WalletAddress, req.Username)
	if err != nil {
		h.writeError(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	h.writeJSON(w, status, toUserJSON(*u))
}
