package models

import "time"

// Burn transaction statuses.
const (
	BurnStatusPending   = "pending"
	BurnStatusConfirmed = "confirmed"
	BurnStatusFailed    = "failed"
)

// BurnTransactionDB represents a row in pixey_burn_transactions. The unique
// signature column is what prevents double-credit replay.
type BurnTransactionDB struct {
	Signature      string    `db:"signature" json:"signature"`
	WalletAddress  string    `db:"wallet_address" json:"wallet_address"`
	TokensBurned   int64     `db:"tokens_burned" json:"tokens_burned"`
	PixelsReceived int64     `db:"pixels_received" json:"pixels_received"`
	Status         string    `db:"status" json:"status"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
