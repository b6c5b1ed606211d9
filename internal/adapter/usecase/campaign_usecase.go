package usecase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 5000
)

// CampaignUseCase implements campaign lifecycle management: creation,
// creator-authorized updates and listing. Status transitions beyond the
// generic enum check are enforced here, not in the repository.
type CampaignUseCase struct {
	campaigns port.CampaignRepository
	users     port.UserRepository
}

// NewCampaignUseCase creates a new usecase with the provided repositories.
func NewCampaignUseCase(campaigns port.CampaignRepository, users port.UserRepository) *CampaignUseCase {
	return &CampaignUseCase{campaigns: campaigns, users: users}
}

// Create validates and persists a new campaign in draft status. The budget
// and rate must be positive and are immutable afterwards.
func (u *CampaignUseCase) Create(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	wallet := strings.TrimSpace(req.CreatorWallet)
	if title == "" || description == "" || wallet == "" {
		return nil, port.ValidationError("missing required fields")
	}
	if req.CampaignAmount <= 0 || req.RatePer1KViews <= 0 {
		return nil, port.ValidationError("campaign amount and rate must be positive numbers")
	}

	creator, err := u.users.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if creator == nil {
		return nil, port.ErrWalletUnknown
	}

	c := domain.Campaign{
		ID:             uuid.New(),
		Title:          title,
		Description:    description,
		CreatorID:      creator.ID,
		CampaignAmount: req.CampaignAmount,
		RatePer1KViews: req.RatePer1KViews,
		Status:         domain.CampaignStatusDraft,
		Metadata:       domain.CampaignMetadata{Requirements: strings.TrimSpace(req.Requirements)},
	}
	return u.campaigns.Create(ctx, c)
}

// Get returns a single campaign by id.
func (u *CampaignUseCase) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}
	return c, nil
}

// Update applies a partial update on behalf of the campaign creator. Each
// recognized field is validated independently; a request that carries no
// recognized field is rejected. Budget and rate are not in the recognized
// set and cannot be changed here.
func (u *CampaignUseCase) Update(ctx context.Context, id uuid.UUID, req port.UpdateCampaignReq) (*domain.Campaign, error) {
	if strings.TrimSpace(req.UpdaterWallet) == "" {
		return nil, port.ValidationError("updater_wallet is required")
	}

	c, err := u.campaigns.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrCampaignNotFound
	}

	creator, err := u.users.GetByID(ctx, c.CreatorID)
	if err != nil {
		return nil, err
	}
	if creator == nil || creator.WalletAddress != req.UpdaterWallet {
		return nil, port.ErrNotCreator
	}

	now := time.Now().UTC()
	touched := false

	if req.Status != nil {
		s := *req.Status
		if !domain.ValidCampaignStatus(s) {
			return nil, port.ValidationError("invalid status, must be one of: draft, active, ended, cancelled")
		}
		if s == domain.CampaignStatusEnded && c.Status != domain.CampaignStatusEnded {
			c.EndedAt = &now
		}
		c.Status = s
		touched = true
	}

	if req.FundingTxSignature != nil {
		sig := strings.TrimSpace(*req.FundingTxSignature)
		if sig == "" {
			return nil, port.ValidationError("funding_tx_signature must be a non-empty string")
		}
		if !domain.ValidTxSignature(sig) {
			return nil, port.ValidationError("funding_tx_signature is not a valid transaction signature")
		}
		c.FundingTxSignature = &sig
		if c.FundedAt == nil {
			c.FundedAt = &now
		}
		touched = true
	}

	if req.FundedAt != nil {
		c.FundedAt = req.FundedAt
		touched = true
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" || len(title) > maxTitleLen {
			return nil, port.ValidationError("title must be between 1 and 200 characters")
		}
		c.Title = title
		touched = true
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if len(description) > maxDescriptionLen {
			return nil, port.ValidationError("description must be at most 5000 characters")
		}
		c.Description = description
		touched = true
	}

	if req.AssetFolderURL != nil {
		folder := strings.TrimSpace(*req.AssetFolderURL)
		if folder == "" {
			c.AssetFolderURL = nil
		} else {
			parsed, err := url.Parse(folder)
			if err != nil || parsed.Scheme == "" || parsed.Host == "" {
				return nil, port.ValidationError("asset_folder_url must be a valid URL")
			}
			c.AssetFolderURL = &folder
		}
		touched = true
	}

	if req.Distributed != nil {
		if *req.Distributed {
			if c.Status != domain.CampaignStatusEnded {
				return nil, port.ValidationError("campaign must be ended before payouts can be distributed")
			}
			if c.Distributed {
				return nil, port.ValidationError("campaign already distributed")
			}
			c.Distributed = true
			c.DistributedAt = &now
		} else {
			c.Distributed = false
			c.DistributedAt = nil
		}
		touched = true
	}

	if !touched {
		return nil, port.ValidationError("no valid fields to update")
	}

	if err = u.campaigns.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns campaigns newest-first, optionally filtered by status and
// creator wallet. An unknown wallet yields an empty list.
func (u *CampaignUseCase) List(ctx context.Context, status domain.CampaignStatus, creatorWallet string) ([]port.CampaignWithCreator, error) {
	f := port.CampaignFilter{Status: status}
	if creatorWallet != "" {
		creator, err := u.users.GetByWallet(ctx, creatorWallet)
		if err != nil {
			return nil, err
		}
		if creator == nil {
			return []port.CampaignWithCreator{}, nil
		}
		f.CreatorID = &creator.ID
	}
	return u.campaigns.List(ctx, f)
}
