package models

import "time"

// UserDB represents a row in the pixey_users table.
type UserDB struct {
	WalletAddress     string     `db:"wallet_address" json:"wallet_address"`
	Username          string     `db:"username" json:"username"`
	ProfilePicture    *string    `db:"profile_picture" json:"profile_picture,omitempty"`
	FreePixels        int64      `db:"free_pixels" json:"free_pixels"`
	TotalPixelsPlaced int64      `db:"total_pixels_placed" json:"total_pixels_placed"`
	TotalTokensBurned int64      `db:"total_tokens_burned" json:"total_tokens_burned"`
	AuthMessage       *string    `db:"auth_message" json:"-"`
	AuthSignature     *string    `db:"auth_signature" json:"-"`
	LastLogin         *time.Time `db:"last_login" json:"last_login,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}
