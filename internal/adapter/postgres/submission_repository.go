package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

const submissionColumns = `id, campaign_id, user_id, video_url, platform, status, view_count, earned_amount, created_at, updated_at`

// SubmissionRepository implements port.SubmissionRepository using pgxpool.
type SubmissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository returns a new repository instance.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepository {
	return &SubmissionRepository{pool: pool}
}

func scanSubmission(row pgx.Row) (*domain.Submission, error) {
	var (
		s                domain.Submission
		platform, status string
	)
	err := row.Scan(
		&s.ID, &s.CampaignID, &s.UserID, &s.VideoURL, &platform, &status,
		&s.ViewCount, &s.EarnedAmount, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Platform = domain.Platform(platform)
	s.Status = domain.SubmissionStatus(status)
	return &s, nil
}

// Create inserts a new submission. A violation of the unique index on
// (campaign_id, user_id, video_url) is reported as ErrDuplicateSubmission.
func (r *SubmissionRepository) Create(ctx context.Context, s domain.Submission) (*domain.Submission, error) {
	row := r.pool.QueryRow(ctx, `INSERT INTO submissions
    (id, campaign_id, user_id, video_url, platform, status, view_count, earned_amount, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,0,0,now(),now())
RETURNING `+submissionColumns,
		s.ID, s.CampaignID, s.UserID, s.VideoURL, string(s.Platform), string(s.Status))
	created, err := scanSubmission(row)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return nil, port.ErrDuplicateSubmission
	}
	return created, err
}

// List returns submissions newest-first joined with submitter identity,
// filtered by the provided predicates.
func (r *SubmissionRepository) List(ctx context.Context, f port.SubmissionFilter) ([]port.SubmissionWithUser, error) {
	query := `SELECT s.id, s.campaign_id, s.user_id, s.video_url, s.platform, s.status,
       s.view_count, s.earned_amount, s.created_at, s.updated_at,
       u.wallet_address, u.username
FROM submissions s
JOIN users u ON u.id = s.user_id`
	var (
		where string
		args  []interface{}
	)
	if f.CampaignID != nil {
		args = append(args, *f.CampaignID)
		where = fmt.Sprintf(" WHERE s.campaign_id = $%d", len(args))
	}
	if f.Status != "" {
		args = append(args, string(f.Status))
		if where == "" {
			where = fmt.Sprintf(" WHERE s.status = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND s.status = $%d", len(args))
		}
	}
	rows, err := r.pool.Query(ctx, query+where+` ORDER BY s.created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.SubmissionWithUser, error) {
		var (
			out              port.SubmissionWithUser
			platform, status string
		)
		err := row.Scan(
			&out.ID, &out.CampaignID, &out.UserID, &out.VideoURL, &platform, &status,
			&out.ViewCount, &out.EarnedAmount, &out.CreatedAt, &out.UpdatedAt,
			&out.SubmitterWallet, &out.SubmitterUsername,
		)
		out.Platform = domain.Platform(platform)
		out.Status = domain.SubmissionStatus(status)
		return out, err
	})
}

// ListByCampaign returns all submissions of a campaign ordered by creation.
func (r *SubmissionRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Submission, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE campaign_id = $1 ORDER BY created_at`, campaignID)
	if err != nil {
		return nil, err
	}
	ptrs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Submission, error) {
		return scanSubmission(row)
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Submission, 0, len(ptrs))
	for _, s := range ptrs {
		out = append(out, *s)
	}
	return out, nil
}

// ListByUser returns a contributor's submissions newest-first joined with
// campaign summary fields.
func (r *SubmissionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]port.SubmissionWithCampaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT s.id, s.campaign_id, s.user_id, s.video_url, s.platform, s.status,
       s.view_count, s.earned_amount, s.created_at, s.updated_at,
       c.title, c.status
FROM submissions s
JOIN campaigns c ON c.id = s.campaign_id
WHERE s.user_id = $1
ORDER BY s.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.SubmissionWithCampaign, error) {
		var (
			out                              port.SubmissionWithCampaign
			platform, status, campaignStatus string
		)
		err := row.Scan(
			&out.ID, &out.CampaignID, &out.UserID, &out.VideoURL, &platform, &status,
			&out.ViewCount, &out.EarnedAmount, &out.CreatedAt, &out.UpdatedAt,
			&out.CampaignTitle, &campaignStatus,
		)
		out.Platform = domain.Platform(platform)
		out.Status = domain.SubmissionStatus(status)
		out.CampaignStatus = domain.CampaignStatus(campaignStatus)
		return out, err
	})
}

// UpdateViews overwrites the refreshed view count and recomputed earnings.
func (r *SubmissionRepository) UpdateViews(ctx context.Context, id uuid.UUID, viewCount int64, earnedAmount float64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE submissions SET view_count = $2, earned_amount = $3, updated_at = now() WHERE id = $1`,
		id, viewCount, earnedAmount)
	return err
}

// SumViews returns the total view count across a campaign's submissions.
func (r *SubmissionRepository) SumViews(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(sum(view_count), 0) FROM submissions WHERE campaign_id = $1`, campaignID).Scan(&total)
	return total, err
}

// HasPayable reports whether the campaign has at least one approved
// submission with positive earnings.
func (r *SubmissionRepository) HasPayable(ctx context.Context, campaignID uuid.UUID) (bool, error) {
	var payable bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (
    SELECT 1 FROM submissions
    WHERE campaign_id = $1 AND status = 'approved' AND earned_amount > 0
)`, campaignID).Scan(&payable)
	return payable, err
}
