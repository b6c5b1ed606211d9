package httpadapter

import (
	"time"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

type creatorJSON struct {
	WalletAddress string  `json:"wallet_address"`
	Username      *string `json:"username"`
}

type campaignJSON struct {
	ID                 string                  `json:"id"`
	Title              string                  `json:"title"`
	Description        string                  `json:"description"`
	CreatorID          string                  `json:"creator_id"`
	CampaignAmount     float64                 `json:"campaign_amount"`
	RatePer1KViews     float64                 `json:"rate_per_1k_views"`
	Status             string                  `json:"status"`
	FundingTxSignature *string                 `json:"funding_tx_signature,omitempty"`
	FundedAt           *time.Time              `json:"funded_at,omitempty"`
	EndedAt            *time.Time              `json:"ended_at,omitempty"`
	Distributed        bool                    `json:"distributed"`
	DistributedAt      *time.Time              `json:"distributed_at,omitempty"`
	AssetFolderURL     *string                 `json:"asset_folder_url,omitempty"`
	Metadata           domain.CampaignMetadata `json:"metadata"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
	Creator            *creatorJSON            `json:"creator,omitempty"`
}

func toCampaignJSON(c domain.Campaign) campaignJSON {
	return campaignJSON{
		ID:                 c.ID.String(),
		Title:              c.Title,
		Description:        c.Description,
		CreatorID:          c.CreatorID.String(),
		CampaignAmount:     c.CampaignAmount,
		RatePer1KViews:     c.RatePer1KViews,
		Status:             string(c.Status),
		FundingTxSignature: c.FundingTxSignature,
		FundedAt:           c.FundedAt,
		EndedAt:            c.EndedAt,
		Distributed:        c.Distributed,
		DistributedAt:      c.DistributedAt,
		AssetFolderURL:     c.AssetFolderURL,
		Metadata:           c.Metadata,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func toCampaignWithCreatorJSON(c port.CampaignWithCreator) campaignJSON {
	out := toCampaignJSON(c.Campaign)
	out.Creator = &creatorJSON{WalletAddress: c.CreatorWallet, Username: c.CreatorUsername}
	return out
}

type submissionJSON struct {
	ID           string       `json:"id"`
	CampaignID   string       `json:"campaign_id"`
	UserID       string       `json:"user_id"`
	VideoURL     string       `json:"video_url"`
	Platform     string       `json:"platform"`
	Status       string       `json:"status"`
	ViewCount    int64        `json:"view_count"`
	EarnedAmount float64      `json:"earned_amount"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	User         *creatorJSON `json:"user,omitempty"`

	Campaign *submissionCampaignJSON `json:"campaign,omitempty"`
}

type submissionCampaignJSON struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

func toSubmissionJSON(s domain.Submission) submissionJSON {
	return submissionJSON{
		ID:           s.ID.String(),
		CampaignID:   s.CampaignID.String(),
		UserID:       s.UserID.String(),
		VideoURL:     s.VideoURL,
		Platform:     string(s.Platform),
		Status:       string(s.Status),
		ViewCount:    s.ViewCount,
		EarnedAmount: s.EarnedAmount,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toSubmissionWithUserJSON(s port.SubmissionWithUser) submissionJSON {
	out := toSubmissionJSON(s.Submission)
	out.User = &creatorJSON{WalletAddress: s.SubmitterWallet, Username: s.SubmitterUsername}
	return out
}

func toSubmissionWithCampaignJSON(s port.SubmissionWithCampaign) submissionJSON {
	out := toSubmissionJSON(s.Submission)
	out.Campaign = &submissionCampaignJSON{
		ID:     s.CampaignID.String(),
		Title:  s.CampaignTitle,
		Status: string(s.CampaignStatus),
	}
	return out
}

type userJSON struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Username      *string   `json:"username"`
	CreatedAt     time.Time `json:"created_at"`
}

func toUserJSON(u domain.User) userJSON {
	return userJSON{
		ID:            u.ID.String(),
		WalletAddress: u.WalletAddress,
		Username:      u.Username,
		CreatedAt:     u.CreatedAt,
	}
}
