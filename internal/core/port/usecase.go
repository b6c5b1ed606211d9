package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"clipfund/internal/core/domain"
)

// CreateCampaignReq carries the fields of a campaign creation request.
type CreateCampaignReq struct {
	Title          string
	Description    string
	CampaignAmount float64
	RatePer1KViews float64
	CreatorWallet  string
	Requirements   string
}

// UpdateCampaignReq carries a partial campaign update. Nil fields are left
// untouched. Budget and rate are deliberately absent: they are immutable
// after creation.
type UpdateCampaignReq struct {
	UpdaterWallet      string
	Status             *domain.CampaignStatus
	FundingTxSignature *string
	FundedAt           *time.Time
	Title              *string
	Description        *string
	AssetFolderURL     *string
	Distributed        *bool
}

// CampaignUseCase owns campaign status transitions, funding confirmation
// and field-level update authorization.
type CampaignUseCase interface {
	Create(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateCampaignReq) (*domain.Campaign, error)
	// List filters by status and creator wallet. An unknown wallet yields
	// an empty list, not an error.
	List(ctx context.Context, status domain.CampaignStatus, creatorWallet string) ([]CampaignWithCreator, error)
}

// CreateSubmissionReq carries the fields of a submission creation request.
type CreateSubmissionReq struct {
	CampaignID      uuid.UUID
	SubmitterWallet string
	VideoURL        string
}

// SubmissionUseCase validates and records content submissions.
type SubmissionUseCase interface {
	Create(ctx context.Context, req CreateSubmissionReq) (*domain.Submission, error)
	List(ctx context.Context, f SubmissionFilter) ([]SubmissionWithUser, error)
}

// SweepReport summarizes one reconciliation run. Per-row failures are not
// errors; callers inspect the counts to detect partial failure.
type SweepReport struct {
	CampaignsExamined  int `json:"campaigns_examined"`
	SubmissionsUpdated int `json:"submissions_updated"`
	CampaignsEnded     int `json:"campaigns_ended"`
}

// DistributeReport summarizes one auto-distribution run.
type DistributeReport struct {
	CampaignsChecked     int `json:"campaigns_checked"`
	CampaignsDistributed int `json:"campaigns_distributed"`
}

// SweepUseCase runs the two scheduled batch jobs and the on-demand
// single-campaign refresh. Runs are idempotent and safe to invoke
// concurrently: status transitions go through conditional updates.
type SweepUseCase interface {
	// UpdateViews refreshes view counts and earnings for all submissions
	// of all active campaigns and auto-ends campaigns that reached their
	// target views. Only a failure to enumerate active campaigns aborts
	// the run.
	UpdateViews(ctx context.Context) (*SweepReport, error)
	// RefreshCampaign performs the same refresh for a single campaign and
	// returns the number of submissions updated.
	RefreshCampaign(ctx context.Context, campaignID uuid.UUID) (int, error)
	// AutoDistribute flags ended campaigns older than the grace window as
	// distributed when they have payable submissions.
	AutoDistribute(ctx context.Context) (*DistributeReport, error)
}

// Profile aggregates everything belonging to a wallet.
type Profile struct {
	User        domain.User
	Campaigns   []domain.Campaign
	Submissions []SubmissionWithCampaign
}

// UserUseCase covers wallet-centric operations: first-connect registration
// and the profile aggregate.
type UserUseCase interface {
	// Connect registers a wallet on first sight and reports whether a new
	// user was created.
	Connect(ctx context.Context, wallet string, username *string) (*domain.User, bool, error)
	Profile(ctx context.Context, wallet string) (*Profile, error)
}

// ViewSource looks up the current public view count of a video. Missing
// data coerces to 0 rather than an error; failures are reported so sweep
// callers can skip the row.
type ViewSource interface {
	Views(ctx context.Context, videoURL string) (int64, error)
}

// ValidationResult is the content validator's verdict on a submission.
type ValidationResult struct {
	Valid       bool   `json:"valid"`
	Explanation string `json:"explanation"`
}

// ContentValidator judges whether a video satisfies campaign requirements.
// It is an external generative-AI collaborator; failures map to ErrUpstream.
type ContentValidator interface {
	Validate(ctx context.Context, videoURL, requirements string) (*ValidationResult, error)
}
