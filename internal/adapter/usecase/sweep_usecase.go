package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

// DistributionGrace is how long a campaign must have been ended before the
// auto-distribution sweep will flag it.
const DistributionGrace = 24 * time.Hour

// SweepUseCase runs the view/earnings reconciliation and auto-distribution
// jobs. Per-row failures are logged and skipped so a single bad video URL
// or transient lookup error never aborts a run; re-running with unchanged
// upstream counts writes identical earned amounts.
type SweepUseCase struct {
	campaigns   port.CampaignRepository
	submissions port.SubmissionRepository
	views       port.ViewSource
	logger      *slog.Logger

	now func() time.Time
}

// NewSweepUseCase creates a new sweep usecase.
func NewSweepUseCase(campaigns port.CampaignRepository, submissions port.SubmissionRepository, views port.ViewSource, logger *slog.Logger) *SweepUseCase {
	return &SweepUseCase{
		campaigns:   campaigns,
		submissions: submissions,
		views:       views,
		logger:      logger,
		now:         time.Now,
	}
}

// UpdateViews refreshes view counts and recomputed earnings for every
// submission of every active campaign, then auto-ends campaigns whose
// total views reached the budget-implied target. Only a failure to list
// the active campaigns aborts the run.
func (u *SweepUseCase) UpdateViews(ctx context.Context) (*port.SweepReport, error) {
	campaigns, err := u.campaigns.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active campaigns: %w", err)
	}

	rep := &port.SweepReport{}
	for i := range campaigns {
		c := &campaigns[i]
		rep.CampaignsExamined++
		if c.RatePer1KViews <= 0 {
			u.logger.Warn("skipping campaign with non-positive rate",
				slog.String("campaign_id", c.ID.String()))
			continue
		}
		updated, ended, err := u.reconcile(ctx, c)
		rep.SubmissionsUpdated += updated
		if ended {
			rep.CampaignsEnded++
		}
		if err != nil {
			u.logger.Error("campaign reconciliation error",
				slog.String("campaign_id", c.ID.String()), slog.Any("error", err))
		}
	}
	return rep, nil
}

// RefreshCampaign runs the reconciliation for a single campaign on demand
// and returns the number of submissions updated.
func (u *SweepUseCase) RefreshCampaign(ctx context.Context, campaignID uuid.UUID) (int, error) {
	c, err := u.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return 0, err
	}
	if c == nil {
		return 0, port.ErrCampaignNotFound
	}
	if c.RatePer1KViews <= 0 {
		return 0, port.ValidationError("campaign rate must be positive")
	}
	updated, _, err := u.reconcile(ctx, c)
	return updated, err
}

// reconcile refreshes all submissions of one campaign and transitions it
// to ended when the view target is reached. The transition is a
// conditional update that only succeeds while the campaign is still
// active, so two concurrent runs cannot double-end the same row.
func (u *SweepUseCase) reconcile(ctx context.Context, c *domain.Campaign) (updated int, ended bool, err error) {
	subs, err := u.submissions.ListByCampaign(ctx, c.ID)
	if err != nil {
		return 0, false, fmt.Errorf("list submissions: %w", err)
	}

	for i := range subs {
		s := &subs[i]
		views, err := u.views.Views(ctx, s.VideoURL)
		if err != nil {
			u.logger.Error("view lookup error",
				slog.String("submission_id", s.ID.String()),
				slog.String("video_url", s.VideoURL),
				slog.Any("error", err))
			continue
		}
		if views < 0 {
			views = 0
		}
		earned := domain.Earned(views, c.RatePer1KViews)
		if err = u.submissions.UpdateViews(ctx, s.ID, views, earned); err != nil {
			u.logger.Error("submission update error",
				slog.String("submission_id", s.ID.String()), slog.Any("error", err))
			continue
		}
		updated++
	}

	totalViews, err := u.submissions.SumViews(ctx, c.ID)
	if err != nil {
		return updated, false, fmt.Errorf("sum views: %w", err)
	}
	if float64(totalViews) >= c.TargetViews() {
		ended, err = u.campaigns.EndIfActive(ctx, c.ID, u.now().UTC())
		if err != nil {
			return updated, false, fmt.Errorf("end campaign: %w", err)
		}
		if ended {
			u.logger.Info("campaign reached target views, ended",
				slog.String("campaign_id", c.ID.String()),
				slog.Int64("total_views", totalViews))
		}
	}
	return updated, ended, nil
}

// AutoDistribute flags campaigns that ended more than the grace window ago
// and have payable approved submissions as distributed. Campaigns with
// nothing to pay are left untouched.
func (u *SweepUseCase) AutoDistribute(ctx context.Context) (*port.DistributeReport, error) {
	cutoff := u.now().UTC().Add(-DistributionGrace)
	campaigns, err := u.campaigns.ListDistributable(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list distributable campaigns: %w", err)
	}

	rep := &port.DistributeReport{}
	for i := range campaigns {
		c := &campaigns[i]
		rep.CampaignsChecked++
		payable, err := u.submissions.HasPayable(ctx, c.ID)
		if err != nil {
			u.logger.Error("payable check error",
				slog.String("campaign_id", c.ID.String()), slog.Any("error", err))
			continue
		}
		if !payable {
			continue
		}
		ok, err := u.campaigns.MarkDistributed(ctx, c.ID, u.now().UTC())
		if err != nil {
			u.logger.Error("mark distributed error",
				slog.String("campaign_id", c.ID.String()), slog.Any("error", err))
			continue
		}
		if ok {
			rep.CampaignsDistributed++
			u.logger.Info("auto-distributed campaign",
				slog.String("campaign_id", c.ID.String()),
				slog.String("title", c.Title))
		}
	}
	return rep, nil
}
