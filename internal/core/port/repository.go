package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clipfund/internal/core/domain"
)

// CampaignFilter narrows campaign listings. Zero values mean "any".
type CampaignFilter struct {
	Status    domain.CampaignStatus
	CreatorID *uuid.UUID
}

// CampaignWithCreator pairs a campaign with its creator's public identity
// for display in listings.
type CampaignWithCreator struct {
	domain.Campaign
	CreatorWallet   string
	CreatorUsername *string
}

// CampaignRepository is the persistence port for campaigns. Implementations
// must make the conditional transition methods atomic single-row updates so
// concurrent sweeps cannot double-transition the same campaign.
type CampaignRepository interface {
	Create(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	// GetByID returns nil when no campaign exists with the given id.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// Update persists all mutable columns of c (status, funding fields,
	// distribution fields, title, description, asset folder URL) and bumps
	// updated_at. Budget and rate are never written.
	Update(ctx context.Context, c *domain.Campaign) error
	List(ctx context.Context, f CampaignFilter) ([]CampaignWithCreator, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Campaign, error)
	ListActive(ctx context.Context) ([]domain.Campaign, error)
	// ListDistributable returns ended, undistributed campaigns whose
	// ended_at is at or before the cutoff.
	ListDistributable(ctx context.Context, endedBefore time.Time) ([]domain.Campaign, error)
	// EndIfActive transitions the campaign to ended and stamps ended_at,
	// but only if it is still active at write time. It reports whether the
	// row was transitioned; false is a no-op, not an error.
	EndIfActive(ctx context.Context, id uuid.UUID, endedAt time.Time) (bool, error)
	// MarkDistributed flips distributed to true and stamps distributed_at,
	// but only if the campaign is not already distributed.
	MarkDistributed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

// SubmissionFilter narrows submission listings. Zero values mean "any".
type SubmissionFilter struct {
	CampaignID *uuid.UUID
	Status     domain.SubmissionStatus
}

// SubmissionWithUser pairs a submission with its submitter's public
// identity for display in listings.
type SubmissionWithUser struct {
	domain.Submission
	SubmitterWallet   string
	SubmitterUsername *string
}

// SubmissionWithCampaign pairs a submission with summary fields of its
// campaign, used by the profile aggregate.
type SubmissionWithCampaign struct {
	domain.Submission
	CampaignTitle  string
	CampaignStatus domain.CampaignStatus
}

// SubmissionRepository is the persistence port for submissions. Create must
// surface the (campaign_id, user_id, video_url) uniqueness violation as
// ErrDuplicateSubmission.
type SubmissionRepository interface {
	Create(ctx context.Context, s domain.Submission) (*domain.Submission, error)
	List(ctx context.Context, f SubmissionFilter) ([]SubmissionWithUser, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Submission, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]SubmissionWithCampaign, error)
	// UpdateViews overwrites view_count and earned_amount and stamps
	// updated_at.
	UpdateViews(ctx context.Context, id uuid.UUID, viewCount int64, earnedAmount float64) error
	// SumViews returns the total view count across a campaign's submissions.
	SumViews(ctx context.Context, campaignID uuid.UUID) (int64, error)
	// HasPayable reports whether the campaign has at least one approved
	// submission with a positive earned amount.
	HasPayable(ctx context.Context, campaignID uuid.UUID) (bool, error)
}

// UserRepository resolves wallet addresses to stable user identities.
type UserRepository interface {
	// GetByWallet returns nil when the wallet has never connected.
	GetByWallet(ctx context.Context, wallet string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	// Upsert creates the user for a wallet on first sight and reports
	// whether a row was created. An existing user's username is updated
	// when a non-nil username is given.
	Upsert(ctx context.Context, wallet string, username *string) (*domain.User, bool, error)
}
