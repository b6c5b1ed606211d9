package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

type createSubmissionRequest struct {
	CampaignID      string `json:"campaign_id"`
	SubmitterWallet string `json:"submitter_wallet"`
	VideoURL        string `json:"video_url"`
}

// handleCreateSubmission records a content submission against an active
// campaign. Duplicate (campaign, user, video) triples produce HTTP 409.
func (h *Handler) handleCreateSubmission(w http.ResponseWriter, r *http.Request) {
	var req createSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return
	}
	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil && req.CampaignID != "" {
		h.writeError(w, port.ErrCampaignNotFound)
		return
	}
	s, err := h.submissions.Create(r.Context(), port.CreateSubmissionReq{
		CampaignID:      campaignID,
		SubmitterWallet: req.SubmitterWallet,
		VideoURL:        req.VideoURL,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toSubmissionJSON(*s))
}

// handleListSubmissions lists submissions newest-first, optionally
// filtered by `campaign_id` and `status` query parameters.
func (h *Handler) handleListSubmissions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var f port.SubmissionFilter
	if raw := q.Get("campaign_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid campaign_id"})
			return
		}
		f.CampaignID = &id
	}
	f.Status = domain.SubmissionStatus(q.Get("status"))

	submissions, err := h.submissions.List(r.Context(), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	out := make([]submissionJSON, 0, len(submissions))
	for _, s := range submissions {
		out = append(out, toSubmissionWithUserJSON(s))
	}
	h.writeJSON(w, http.StatusOK, out)
}
