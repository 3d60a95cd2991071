package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/vibegame/pixey-backend/internal/models"
)

// UserReadRepository handles user reads outside of a transaction.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByWallet returns the user row, or (nil, nil) when no such user exists.
func (r *UserReadRepository) GetByWallet(ctx context.Context, walletAddress string) (*models.UserDB, error) {
	const query = `
		SELECT wallet_address, username, profile_picture, free_pixels,
		       total_pixels_placed, total_tokens_burned,
		       auth_message, auth_signature, last_login, created_at, updated_at
		FROM pixey_users
		WHERE wallet_address = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, walletAddress)

	logQuery(query, []any{walletAddress}, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user writes inside the request transaction.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new user with the starting free-pixel grant and
// returns the created row, or (nil, nil) when the wallet already has an
// account. A concurrent creator losing the race gets the nil result, not
// a constraint violation.
func (r *UserWriteRepository) Create(ctx context.Context, walletAddress, username string, freePixels int64) (*models.UserDB, error) {
	const query = `
		INSERT INTO pixey_users
			(wallet_address, username, free_pixels, total_pixels_placed, total_tokens_burned, last_login, created_at, updated_at)
		VALUES ($1, $2, $3, 0, 0, NOW(), NOW(), NOW())
		ON CONFLICT (wallet_address) DO NOTHING
		RETURNING wallet_address, username, profile_picture, free_pixels,
		          total_pixels_placed, total_tokens_burned,
		          auth_message, auth_signature, last_login, created_at, updated_at
	`
	args := []any{walletAddress, username, freePixels}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)

	logQuery(query, args, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateAuth records the latest login signature and bumps last_login.
func (r *UserWriteRepository) UpdateAuth(ctx context.Context, walletAddress, message, signature string) error {
	const query = `
		UPDATE pixey_users
		SET auth_message = $1, auth_signature = $2, last_login = NOW(), updated_at = NOW()
		WHERE wallet_address = $3
	`
	args := []any{message, signature, walletAddress}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}

// GetBalanceForUpdate locks the user row and returns the current credit
// balance. This is the serialization point for concurrent debits from
// the same wallet.
func (r *UserWriteRepository) GetBalanceForUpdate(ctx context.Context, walletAddress string) (int64, error) {
	const query = `
		SELECT free_pixels
		FROM pixey_users
		WHERE wallet_address = $1
		FOR UPDATE
	`

	var balance int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, walletAddress)

	logQuery(query, []any{walletAddress}, balance, err)

	if err != nil {
		return 0, err
	}
	return balance, nil
}

// AdjustBalance applies credit/placement/burn deltas in one update and
// returns the remaining free-pixel balance. Debits pass a negative
// pixelsDelta; callers must have checked the balance under lock first.
func (r *UserWriteRepository) AdjustBalance(ctx context.Context, walletAddress string, pixelsDelta, placedDelta, burnedDelta int64) (int64, error) {
	const query = `
		UPDATE pixey_users
		SET free_pixels = free_pixels + $1,
		    total_pixels_placed = total_pixels_placed + $2,
		    total_tokens_burned = total_tokens_burned + $3,
		    updated_at = NOW()
		WHERE wallet_address = $4
		RETURNING free_pixels
	`
	args := []any{pixelsDelta, placedDelta, burnedDelta, walletAddress}

	var remaining int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &remaining, query, args...)

	logQuery(query, args, remaining, err)

	if err != nil {
		return 0, err
	}
	return remaining, nil
}

// UpdateProfile sets username and profile picture and returns the
// updated row, or (nil, nil) when the user does not exist.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, walletAddress, username string, profilePicture *string) (*models.UserDB, error) {
	const query = `
		UPDATE pixey_users
		SET username = $1, profile_picture = $2, updated_at = NOW()
		WHERE wallet_address = $3
		RETURNING wallet_address, username, profile_picture, free_pixels,
		          total_pixels_placed, total_tokens_burned,
		          auth_message, auth_signature, last_login, created_at, updated_at
	`
	args := []any{username, profilePicture, walletAddress}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)

	logQuery(query, args, user, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
