package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

const campaignColumns = `id, title, description, creator_id, campaign_amount, rate_per_1k_views,
       status, funding_tx_signature, funded_at, ended_at, distributed, distributed_at,
       asset_folder_url, metadata, created_at, updated_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var (
		c       domain.Campaign
		metaRaw []byte
		status  string
	)
	err := row.Scan(
		&c.ID, &c.Title, &c.Description, &c.CreatorID, &c.CampaignAmount, &c.RatePer1KViews,
		&status, &c.FundingTxSignature, &c.FundedAt, &c.EndedAt, &c.Distributed, &c.DistributedAt,
		&c.AssetFolderURL, &metaRaw, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.Status = domain.CampaignStatus(status)
	if len(metaRaw) > 0 {
		if err = json.Unmarshal(metaRaw, &c.Metadata); err != nil {
			return nil, fmt.Errorf("decode campaign metadata: %w", err)
		}
	}
	return &c, nil
}

// Create inserts a new campaign row and returns the persisted record.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	metaRaw, err := json.Marshal(c.Metadata)
	if err != nil {
		return nil, fmt.Errorf("encode campaign metadata: %w", err)
	}
	row := r.pool.QueryRow(ctx, `INSERT INTO campaigns
    (id, title, description, creator_id, campaign_amount, rate_per_1k_views, status, metadata, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,now(),now())
RETURNING `+campaignColumns,
		c.ID, c.Title, c.Description, c.CreatorID, c.CampaignAmount, c.RatePer1KViews, string(c.Status), metaRaw)
	return scanCampaign(row)
}

// GetByID returns a campaign by id, or nil when it does not exist.
func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return c, err
}

// Update persists all mutable columns of c. Budget and rate are never
// written here.
func (r *CampaignRepository) Update(ctx context.Context, c *domain.Campaign) error {
	metaRaw, err := json.Marshal(c.Metadata)
	if err != nil {
		return fmt.Errorf("encode campaign metadata: %w", err)
	}
	_, err = r.pool.Exec(ctx, `UPDATE campaigns SET
    title = $2, description = $3, status = $4, funding_tx_signature = $5, funded_at = $6,
    ended_at = $7, distributed = $8, distributed_at = $9, asset_folder_url = $10,
    metadata = $11, updated_at = now()
WHERE id = $1`,
		c.ID, c.Title, c.Description, string(c.Status), c.FundingTxSignature, c.FundedAt,
		c.EndedAt, c.Distributed, c.DistributedAt, c.AssetFolderURL, metaRaw)
	return err
}

// List returns campaigns newest-first joined with creator identity,
// filtered by the provided predicates.
func (r *CampaignRepository) List(ctx context.Context, f port.CampaignFilter) ([]port.CampaignWithCreator, error) {
	query := `SELECT c.id, c.title, c.description, c.creator_id, c.campaign_amount, c.rate_per_1k_views,
       c.status, c.funding_tx_signature, c.funded_at, c.ended_at, c.distributed, c.distributed_at,
       c.asset_folder_url, c.metadata, c.created_at, c.updated_at,
       u.wallet_address, u.username
FROM campaigns c
JOIN users u ON u.id = c.creator_id`
	var (
		where string
		args  []interface{}
	)
	if f.Status != "" {
		args = append(args, string(f.Status))
		where = fmt.Sprintf(" WHERE c.status = $%d", len(args))
	}
	if f.CreatorID != nil {
		args = append(args, *f.CreatorID)
		if where == "" {
			where = fmt.Sprintf(" WHERE c.creator_id = $%d", len(args))
		} else {
			where += fmt.Sprintf(" AND c.creator_id = $%d", len(args))
		}
	}
	rows, err := r.pool.Query(ctx, query+where+` ORDER BY c.created_at DESC`, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.CampaignWithCreator, error) {
		var (
			out     port.CampaignWithCreator
			metaRaw []byte
			status  string
		)
		err := row.Scan(
			&out.ID, &out.Title, &out.Description, &out.CreatorID, &out.CampaignAmount, &out.RatePer1KViews,
			&status, &out.FundingTxSignature, &out.FundedAt, &out.EndedAt, &out.Distributed, &out.DistributedAt,
			&out.AssetFolderURL, &metaRaw, &out.CreatedAt, &out.UpdatedAt,
			&out.CreatorWallet, &out.CreatorUsername,
		)
		if err != nil {
			return out, err
		}
		out.Status = domain.CampaignStatus(status)
		if len(metaRaw) > 0 {
			if err = json.Unmarshal(metaRaw, &out.Metadata); err != nil {
				return out, fmt.Errorf("decode campaign metadata: %w", err)
			}
		}
		return out, nil
	})
}

// ListByCreator returns a creator's campaigns newest-first.
func (r *CampaignRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]domain.Campaign, error) {
	return r.collect(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE creator_id = $1 ORDER BY created_at DESC`, creatorID)
}

// ListActive returns all campaigns currently accepting submissions.
func (r *CampaignRepository) ListActive(ctx context.Context) ([]domain.Campaign, error) {
	return r.collect(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE status = 'active' ORDER BY created_at`)
}

// ListDistributable returns ended, undistributed campaigns whose ended_at
// is at or before the cutoff.
func (r *CampaignRepository) ListDistributable(ctx context.Context, endedBefore time.Time) ([]domain.Campaign, error) {
	return r.collect(ctx, `SELECT `+campaignColumns+` FROM campaigns
WHERE status = 'ended' AND distributed = false AND ended_at IS NOT NULL AND ended_at <= $1
ORDER BY ended_at`, endedBefore)
}

func (r *CampaignRepository) collect(ctx context.Context, query string, args ...interface{}) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	ptrs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, 0, len(ptrs))
	for _, c := range ptrs {
		out = append(out, *c)
	}
	return out, nil
}

// EndIfActive transitions the campaign to ended only if it is still active
// at write time. The affected-row count signals whether the transition
// happened; a no-op is not an error.
func (r *CampaignRepository) EndIfActive(ctx context.Context, id uuid.UUID, endedAt time.Time) (bool, error) {
	ct, err := r.pool.Exec(ctx, `UPDATE campaigns
SET status = 'ended', ended_at = $2, updated_at = now()
WHERE id = $1 AND status = 'active'`, id, endedAt)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}

// MarkDistributed flips the distributed flag only if it is still false at
// write time.
func (r *CampaignRepository) MarkDistributed(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	ct, err := r.pool.Exec(ctx, `UPDATE campaigns
SET distributed = true, distributed_at = $2, updated_at = now()
WHERE id = $1 AND distributed = false`, id, at)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}
