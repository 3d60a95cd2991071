package models

import "time"

// MaxCommentLength bounds a single chat message.
const MaxCommentLength = 500

// ChatMessageDB represents a row in pixey_chat_messages. Messages are
// soft-deleted via is_deleted, never removed.
type ChatMessageDB struct {
	ID            int64     `db:"id" json:"id"`
	WalletAddress string    `db:"wallet_address" json:"wallet_address"`
	Message       string    `db:"message" json:"content"`
	IsDeleted     bool      `db:"is_deleted" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
