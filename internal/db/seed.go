package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a creator with a funded active campaign, a
// contributor, and a couple of submissions. Intended for local runs only.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	creatorID := uuid.New()
	contributorID := uuid.New()

	users := []struct {
		id       uuid.UUID
		wallet   string
		username string
	}{
		{creatorID, "9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin", "demo-creator"},
		{contributorID, "4Nd1mYvM6K7s1TtzoUxVWKkcUyXM5JEWdTg9yYZyPYYd", "demo-clipper"},
	}
	for _, u := range users {
		_, err := db.Exec(ctx, `INSERT INTO users (id, wallet_address, username, created_at)
VALUES ($1, $2, $3, now()) ON CONFLICT (wallet_address) DO NOTHING`, u.id, u.wallet, u.username)
		if err != nil {
			return err
		}
	}

	campaignID := uuid.New()
	fundedAt := time.Now().Add(-48 * time.Hour)
	_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, title, description, creator_id, campaign_amount, rate_per_1k_views,
     status, funded_at, metadata, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, 'active', $7, $8, now(), now())
ON CONFLICT DO NOTHING`,
		campaignID,
		"Show off the new app",
		"Create a short video demonstrating the core workflow of our app.",
		creatorID,
		100.0, 5.0, fundedAt,
		[]byte(`{"requirements": "Video must feature the app prominently for at least 30 seconds."}`))
	if err != nil {
		return err
	}

	for i := 1; i <= 2; i++ {
		videoURL := fmt.Sprintf("https://www.youtube.com/watch?v=demoVideo%02d", i)
		_, err = db.Exec(ctx, `INSERT INTO submissions
    (id, campaign_id, user_id, video_url, platform, status, view_count, earned_amount, created_at, updated_at)
VALUES ($1, $2, $3, $4, 'youtube', 'approved', 0, 0, now(), now())
ON CONFLICT DO NOTHING`,
			uuid.New(), campaignID, contributorID, videoURL)
		if err != nil {
			return err
		}
	}
	return nil
}
