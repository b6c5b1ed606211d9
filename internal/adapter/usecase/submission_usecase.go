package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

// SubmissionUseCase accepts and lists content submissions. Creation is only
// allowed against active campaigns; the same video cannot be submitted
// twice by the same user to the same campaign.
type SubmissionUseCase struct {
	submissions port.SubmissionRepository
	campaigns   port.CampaignRepository
	users       port.UserRepository
}

// NewSubmissionUseCase creates a new usecase with the provided repositories.
func NewSubmissionUseCase(submissions port.SubmissionRepository, campaigns port.CampaignRepository, users port.UserRepository) *SubmissionUseCase {
	return &SubmissionUseCase{submissions: submissions, campaigns: campaigns, users: users}
}

// Create validates and records a submission. The stored status is approved:
// content validation runs upstream, before this endpoint is reached.
func (u *SubmissionUseCase) Create(ctx context.Context, req port.CreateSubmissionReq) (*domain.Submission, error) {
	videoURL := strings.TrimSpace(req.VideoURL)
	wallet := strings.TrimSpace(req.SubmitterWallet)
	if req.CampaignID == uuid.Nil || wallet == "" || videoURL == "" {
		return nil, port.ValidationError("missing required fields: campaign_id, submitter_wallet, video_url")
	}
	if !domain.ValidVideoURL(videoURL) {
		return nil, port.ValidationError("invalid URL format, please provide a valid URL")
	}

	submitter, err := u.users.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if submitter == nil {
		return nil, port.ErrWalletUnknown
	}

	c, err := u.campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	if c.Status != domain.CampaignStatusActive {
		return nil, port.ErrCampaignNotActive
	}

	s := domain.Submission{
		ID:         uuid.New(),
		CampaignID: c.ID,
		UserID:     submitter.ID,
		VideoURL:   videoURL,
		Platform:   domain.DetectPlatform(videoURL),
		Status:     domain.SubmissionStatusApproved,
	}
	// the unique index on (campaign_id, user_id, video_url) rejects
	// duplicates atomically; the repository maps that to a Conflict
	return u.submissions.Create(ctx, s)
}

// List returns submissions newest-first, joined with submitter identity.
func (u *SubmissionUseCase) List(ctx context.Context, f port.SubmissionFilter) ([]port.SubmissionWithUser, error) {
	return u.submissions.List(ctx, f)
}
