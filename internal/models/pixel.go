package models

import "time"

// PixelDB represents a row in the pixey_pixels table. There is exactly one
// row per board coordinate; overwrites mutate the row in place.
type PixelDB struct {
	X             int       `db:"x_coordinate" json:"x"`
	Y             int       `db:"y_coordinate" json:"y"`
	Color         string    `db:"color" json:"color"`
	WalletAddress string    `db:"wallet_address" json:"wallet_address"`
	PlacedAt      time.Time `db:"placed_at" json:"placed_at"`
}

// PixelHistoryDB represents an append-only row in pixey_pixel_history,
// one per placement or overwrite event.
type PixelHistoryDB struct {
	ID            int64     `db:"id" json:"id"`
	X             int       `db:"x_coordinate" json:"x"`
	Y             int       `db:"y_coordinate" json:"y"`
	NewColor      string    `db:"new_color" json:"new_color"`
	WalletAddress string    `db:"wallet_address" json:"wallet_address"`
	ChangedAt     time.Time `db:"changed_at" json:"changed_at"`
}

// IncomingPixel is a client-submitted pixel before validation.
type IncomingPixel struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

// EasterEggDB represents a pre-seeded bonus coordinate in pixey_easter_eggs.
type EasterEggDB struct {
	ID           int64      `db:"id" json:"id"`
	X            int        `db:"x_coordinate" json:"x"`
	Y            int        `db:"y_coordinate" json:"y"`
	RewardPixels int64      `db:"reward_pixels" json:"reward_pixels"`
	IsClaimed    bool       `db:"is_claimed" json:"is_claimed"`
	ClaimedBy    *string    `db:"claimed_by" json:"claimed_by,omitempty"`
	ClaimedAt    *time.Time `db:"claimed_at" json:"claimed_at,omitempty"`
}
