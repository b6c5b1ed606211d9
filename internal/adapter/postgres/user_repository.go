package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"clipfund/internal/core/domain"
)

// UserRepository implements port.UserRepository using pgxpool.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetByWallet returns the user behind a wallet address, or nil when the
// wallet has never connected.
func (r *UserRepository) GetByWallet(ctx context.Context, wallet string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, wallet_address, username, created_at FROM users WHERE wallet_address = $1`, wallet).
		Scan(&u.ID, &u.WalletAddress, &u.Username, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID returns a user by id, or nil when it does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, wallet_address, username, created_at FROM users WHERE id = $1`, id).
		Scan(&u.ID, &u.WalletAddress, &u.Username, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Upsert creates the user for a wallet on first sight. The xmax = 0 check
// distinguishes an insert from a conflict update on the returned row.
func (r *UserRepository) Upsert(ctx context.Context, wallet string, username *string) (*domain.User, bool, error) {
	var (
		u       domain.User
		created bool
	)
	err := r.pool.QueryRow(ctx, `INSERT INTO users (id, wallet_address, username, created_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (wallet_address)
DO UPDATE SET username = COALESCE(EXCLUDED.username, users.username)
RETURNING id, wallet_address, username, created_at, (xmax = 0)`,
		uuid.New(), wallet, username).
		Scan(&u.ID, &u.WalletAddress, &u.Username, &u.CreatedAt, &created)
	if err != nil {
		return nil, false, err
	}
	return &u, created, nil
}
