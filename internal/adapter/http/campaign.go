package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

type createCampaignRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	CampaignAmount float64 `json:"campaign_amount"`
	RatePer1KViews float64 `json:"rate_per_1k_views"`
	CreatorWallet  string  `json:"creator_wallet"`
	Requirements   string  `json:"requirements"`
}

// handleCreateCampaign creates a new draft campaign. Missing fields and
// non-positive amounts produce HTTP 400; an unknown creator wallet 401.
func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	c, err := h.campaigns.Create(r.Context(), port.CreateCampaignReq{
		Title:          req.Title,
		Description:    req.Description,
		CampaignAmount: req.CampaignAmount,
		RatePer1KViews: req.RatePer1KViews,
		CreatorWallet:  req.CreatorWallet,
		Requirements:   req.Requirements,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toCampaignJSON(*c))
}

// handleListCampaigns lists campaigns newest-first, optionally filtered by
// `status` and `creator_wallet` query parameters. An unknown wallet yields
// an empty list.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	campaigns, err := h.campaigns.List(r.Context(),
		domain.CampaignStatus(q.Get("status")), q.Get("creator_wallet"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]campaignJSON, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, toCampaignWithCreatorJSON(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

// handleGetCampaign fetches a single campaign. Unknown or malformed ids
// produce 404.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, port.ErrCampaignNotFound)
		return
	}
	c, err := h.campaigns.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignJSON(*c))
}

type updateCampaignRequest struct {
	UpdaterWallet      string     `json:"updater_wallet"`
	Status             *string    `json:"status"`
	FundingTxSignature *string    `json:"funding_tx_signature"`
	FundedAt           *time.Time `json:"funded_at"`
	Title              *string    `json:"title"`
	Description        *string    `json:"description"`
	AssetFolderURL     *string    `json:"asset_folder_url"`
	Distributed        *bool      `json:"distributed"`
}

// handleUpdateCampaign applies a partial update on behalf of the campaign
// creator. Absent fields are left untouched; budget and rate cannot be
// changed at all.
func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, port.ErrCampaignNotFound)
		return
	}
	var req updateCampaignRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	update := port.UpdateCampaignReq{
		UpdaterWallet:      req.UpdaterWallet,
		FundingTxSignature: req.FundingTxSignature,
		FundedAt:           req.FundedAt,
		Title:              req.Title,
		Description:        req.Description,
		AssetFolderURL:     req.AssetFolderURL,
		Distributed:        req.Distributed,
	}
	if req.Status != nil {
		s := domain.CampaignStatus(*req.Status)
		update.Status = &s
	}
	c, err := h.campaigns.Update(r.Context(), id, update)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toCampaignJSON(*c))
}

type refreshViewsResponse struct {
	OK      bool `json:"ok"`
	Updated int  `json:"updated"`
}

// handleRefreshViews runs the reconciliation for one campaign on demand.
func (h *Handler) handleRefreshViews(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, port.ErrCampaignNotFound)
		return
	}
	updated, err := h.sweeps.RefreshCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, refreshViewsResponse{OK: true, Updated: updated})
}
