package models

import "time"

// FeaturedArtworkDB represents a row in pixey_featured_artworks.
type FeaturedArtworkDB struct {
	ID            int64     `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Description   *string   `db:"description" json:"description,omitempty"`
	ImageURL      string    `db:"image_url" json:"image_url"`
	CreatorWallet *string   `db:"creator_wallet" json:"creator_wallet,omitempty"`
	IsFeatured    bool      `db:"is_featured" json:"is_featured"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// LeaderboardEntryDB represents a row of the pixey_leaderboard
// materialized view.
type LeaderboardEntryDB struct {
	Rank          int    `db:"rank" json:"rank"`
	WalletAddress string `db:"wallet_address" json:"wallet_address"`
	Username      string `db:"username" json:"username"`
	PixelsPlaced  int64  `db:"pixels_placed" json:"pixels_placed"`
	TokensBurned  int64  `db:"tokens_burned" json:"tokens_burned"`
}
