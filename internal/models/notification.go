package models

import (
	"encoding/json"
	"time"
)

// GlobalRecipient is the sentinel recipient that fans one notification row
// out to every polling client.
const GlobalRecipient = "global"

// Notification types.
const (
	NotificationPixelPlaced   = "pixel_placed"
	NotificationTokensBurned  = "tokens_burned"
	NotificationStageAdvanced = "stage_advanced"
)

// NotificationDB represents a row in pixey_notifications.
type NotificationDB struct {
	ID              int64           `db:"id" json:"id"`
	Type            string          `db:"type" json:"type"`
	Message         string          `db:"message" json:"message"`
	Data            json.RawMessage `db:"data" json:"data,omitempty"`
	RecipientWallet string          `db:"recipient_wallet" json:"recipient_wallet"`
	IsRead          bool            `db:"is_read" json:"is_read"`
	ReadAt          *time.Time      `db:"read_at" json:"read_at,omitempty"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
}
