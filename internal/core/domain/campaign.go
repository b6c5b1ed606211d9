package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a campaign. A campaign starts
// in draft, becomes active once its funding transaction is recorded, and
// ends either by creator action or when submitted views reach the
// budget-implied target. Cancelled is a terminal alternative to ending.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusEnded     CampaignStatus = "ended"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

// ValidCampaignStatus reports whether s is one of the known statuses.
func ValidCampaignStatus(s CampaignStatus) bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusActive, CampaignStatusEnded, CampaignStatusCancelled:
		return true
	default:
		return false
	}
}

// CampaignMetadata is free-form campaign data stored as JSONB. Currently
// it only carries the submission requirements text shown to contributors
// and fed to the content validator.
type CampaignMetadata struct {
	Requirements string `json:"requirements,omitempty"`
}

// Campaign represents a funded request for user-generated video content.
// CampaignAmount is the total budget and RatePer1KViews the payout per
// thousand views; both are fixed at creation.
type Campaign struct {
	ID                 uuid.UUID
	Title              string
	Description        string
	CreatorID          uuid.UUID
	CampaignAmount     float64
	RatePer1KViews     float64
	Status             CampaignStatus
	FundingTxSignature *string
	FundedAt           *time.Time
	EndedAt            *time.Time
	Distributed        bool
	DistributedAt      *time.Time
	AssetFolderURL     *string
	Metadata           CampaignMetadata
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TargetViews returns the number of views that exhausts the budget at the
// configured rate. Callers must ensure RatePer1KViews > 0.
func (c Campaign) TargetViews() float64 {
	return c.CampaignAmount / c.RatePer1KViews * 1000
}

// txSignaturePattern matches a base58-encoded transaction signature as
// produced by the funding wallet (87 or 88 characters, no 0/O/I/l).
var txSignaturePattern = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{87,88}$`)

// ValidTxSignature reports whether s looks like a funding transaction
// signature.
func ValidTxSignature(s string) bool {
	return txSignaturePattern.MatchString(s)
}
