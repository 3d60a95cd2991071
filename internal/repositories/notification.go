package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/vibegame/pixey-backend/internal/models"
)

// NotificationReadRepository serves the polling notification views.
type NotificationReadRepository struct {
	db *sqlx.DB
}

func NewNotificationReadRepository(db *sqlx.DB) *NotificationReadRepository {
	return &NotificationReadRepository{db: db}
}

// ListByRecipient returns the newest notifications addressed to a wallet.
func (r *NotificationReadRepository) ListByRecipient(ctx context.Context, recipientWallet string, limit int) ([]models.NotificationDB, error) {
	const query = `
		SELECT id, type, message, data, recipient_wallet, is_read, read_at, created_at
		FROM pixey_notifications
		WHERE recipient_wallet = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var rows []models.NotificationDB
	err := r.db.SelectContext(ctx, &rows, query, recipientWallet, limit)

	logQuery(query, []any{recipientWallet, limit}, len(rows), err)

	return rows, err
}

// ListByType returns the newest notifications of one type, for the
// global feed.
func (r *NotificationReadRepository) ListByType(ctx context.Context, notificationType string, limit int) ([]models.NotificationDB, error) {
	const query = `
		SELECT id, type, message, data, recipient_wallet, is_read, read_at, created_at
		FROM pixey_notifications
		WHERE type = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	var rows []models.NotificationDB
	err := r.db.SelectContext(ctx, &rows, query, notificationType, limit)

	logQuery(query, []any{notificationType, limit}, len(rows), err)

	return rows, err
}

// NotificationWriteRepository inserts and updates notification rows.
type NotificationWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewNotificationWriteRepository(db *sqlx.DB, txGetter TxGetter) *NotificationWriteRepository {
	return &NotificationWriteRepository{db: db, txGetter: txGetter}
}

// Insert creates a notification row and returns it.
func (r *NotificationWriteRepository) Insert(ctx context.Context, notificationType, message string, data json.RawMessage, recipientWallet string) (*models.NotificationDB, error) {
	const query = `
		INSERT INTO pixey_notifications (type, message, data, recipient_wallet, is_read, created_at)
		VALUES ($1, $2, $3, $4, FALSE, NOW())
		RETURNING id, type, message, data, recipient_wallet, is_read, read_at, created_at
	`
	args := []any{notificationType, message, data, recipientWallet}

	var row models.NotificationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)

	logQuery(query, args, row.ID, err)

	if err != nil {
		return nil, err
	}
	return &row, nil
}

// MarkRead flags a notification as read and returns the updated row, or
// (nil, nil) when the id is unknown.
func (r *NotificationWriteRepository) MarkRead(ctx context.Context, id int64) (*models.NotificationDB, error) {
	const query = `
		UPDATE pixey_notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE id = $1
		RETURNING id, type, message, data, recipient_wallet, is_read, read_at, created_at
	`

	var row models.NotificationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, id)

	logQuery(query, []any{id}, row.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
