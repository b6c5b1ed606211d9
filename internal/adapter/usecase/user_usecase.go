package usecase

import (
	"context"
	"strings"

	"clipfund/internal/core/domain"
	"clipfund/internal/core/port"
)

// UserUseCase covers wallet registration and the profile aggregate.
type UserUseCase struct {
	users       port.UserRepository
	campaigns   port.CampaignRepository
	submissions port.SubmissionRepository
}

// NewUserUseCase creates a new usecase with the provided repositories.
func NewUserUseCase(users port.UserRepository, campaigns port.CampaignRepository, submissions port.SubmissionRepository) *UserUseCase {
	return &UserUseCase{users: users, campaigns: campaigns, submissions: submissions}
}

// Connect registers a wallet on first sight. It reports whether a new user
// row was created.
func (u *UserUseCase) Connect(ctx context.Context, wallet string, username *string) (*domain.User, bool, error) {
	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		return nil, false, port.ValidationError("wallet_address is required")
	}
	if username != nil {
		name := strings.TrimSpace(*username)
		if name == "" {
			username = nil
		} else {
			username = &name
		}
	}
	return u.users.Upsert(ctx, wallet, username)
}

// Profile returns the user identity behind a wallet together with their
// campaigns and submissions, newest-first.
func (u *UserUseCase) Profile(ctx context.Context, wallet string) (*port.Profile, error) {
	user, err := u.users.GetByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, port.ErrUserNotFound
	}

	campaigns, err := u.campaigns.ListByCreator(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	submissions, err := u.submissions.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &port.Profile{User: *user, Campaigns: campaigns, Submissions: submissions}, nil
}
