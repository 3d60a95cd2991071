package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vibegame/pixey-backend/internal/models"
)

// ArtworkReadRepository serves the featured-artworks gallery.
type ArtworkReadRepository struct {
	db *sqlx.DB
}

func NewArtworkReadRepository(db *sqlx.DB) *ArtworkReadRepository {
	return &ArtworkReadRepository{db: db}
}

// ListFeatured returns featured artworks, newest first.
func (r *ArtworkReadRepository) ListFeatured(ctx context.Context) ([]models.FeaturedArtworkDB, error) {
	const query = `
		SELECT id, title, description, image_url, creator_wallet, is_featured, created_at
		FROM pixey_featured_artworks
		WHERE is_featured = TRUE
		ORDER BY created_at DESC
	`

	var rows []models.FeaturedArtworkDB
	err := r.db.SelectContext(ctx, &rows, query)

	logQuery(query, nil, len(rows), err)

	return rows, err
}

// LeaderboardRepository reads and refreshes the ranked materialized view.
type LeaderboardRepository struct {
	db *sqlx.DB
}

func NewLeaderboardRepository(db *sqlx.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// Top returns the highest-ranked entries.
func (r *LeaderboardRepository) Top(ctx context.Context, limit int) ([]models.LeaderboardEntryDB, error) {
	const query = `
		SELECT rank, wallet_address, username, pixels_placed, tokens_burned
		FROM pixey_leaderboard
		ORDER BY rank ASC
		LIMIT $1
	`

	var rows []models.LeaderboardEntryDB
	err := r.db.SelectContext(ctx, &rows, query, limit)

	logQuery(query, []any{limit}, len(rows), err)

	return rows, err
}

// Refresh rebuilds the view; run periodically by the cron scheduler.
func (r *LeaderboardRepository) Refresh(ctx context.Context) error {
	const query = `REFRESH MATERIALIZED VIEW CONCURRENTLY pixey_leaderboard`

	_, err := r.db.ExecContext(ctx, query)

	logQuery(query, nil, "ok", err)

	return err
}
