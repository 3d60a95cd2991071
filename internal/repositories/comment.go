package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vibegame/pixey-backend/internal/models"
)

// CommentReadRepository serves the chat/comment feed.
type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// List returns up to limit non-deleted messages, oldest first.
func (r *CommentReadRepository) List(ctx context.Context, limit int) ([]models.ChatMessageDB, error) {
	const query = `
		SELECT id, wallet_address, message, is_deleted, created_at
		FROM pixey_chat_messages
		WHERE is_deleted = FALSE
		ORDER BY created_at ASC
		LIMIT $1
	`

	var rows []models.ChatMessageDB
	err := r.db.SelectContext(ctx, &rows, query, limit)

	logQuery(query, []any{limit}, len(rows), err)

	return rows, err
}

// CommentWriteRepository inserts chat messages.
type CommentWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewCommentWriteRepository(db *sqlx.DB, txGetter TxGetter) *CommentWriteRepository {
	return &CommentWriteRepository{db: db, txGetter: txGetter}
}

// Insert stores a message and returns the created row.
func (r *CommentWriteRepository) Insert(ctx context.Context, walletAddress, message string) (*models.ChatMessageDB, error) {
	const query = `
		INSERT INTO pixey_chat_messages (wallet_address, message, is_deleted, created_at)
		VALUES ($1, $2, FALSE, NOW())
		RETURNING id, wallet_address, message, is_deleted, created_at
	`
	args := []any{walletAddress, message}

	var row models.ChatMessageDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)

	logQuery(query, args, row.ID, err)

	if err != nil {
		return nil, err
	}
	return &row, nil
}
