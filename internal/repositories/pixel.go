package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vibegame/pixey-backend/internal/models"
)

// PixelReadRepository serves the board snapshot.
type PixelReadRepository struct {
	db *sqlx.DB
}

func NewPixelReadRepository(db *sqlx.DB) *PixelReadRepository {
	return &PixelReadRepository{db: db}
}

// ListAll returns every placed pixel, newest first.
func (r *PixelReadRepository) ListAll(ctx context.Context) ([]models.PixelDB, error) {
	const query = `
		SELECT x_coordinate, y_coordinate, color, wallet_address, placed_at
		FROM pixey_pixels
		ORDER BY placed_at DESC
	`

	var pixels []models.PixelDB
	err := r.db.SelectContext(ctx, &pixels, query)

	logQuery(query, nil, len(pixels), err)

	return pixels, err
}

// PixelWriteRepository performs placement writes inside the request
// transaction.
type PixelWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewPixelWriteRepository(db *sqlx.DB, txGetter TxGetter) *PixelWriteRepository {
	return &PixelWriteRepository{db: db, txGetter: txGetter}
}

// ExistsAt reports whether a pixel is already placed at the coordinate.
func (r *PixelWriteRepository) ExistsAt(ctx context.Context, x, y int) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM pixey_pixels
			WHERE x_coordinate = $1 AND y_coordinate = $2
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, x, y)

	logQuery(query, []any{x, y}, exists, err)

	return exists, err
}

// CountOverwrites returns how many of the given coordinates already hold
// a pixel. The batch is assumed deduplicated.
func (r *PixelWriteRepository) CountOverwrites(ctx context.Context, xs, ys []int64) (int, error) {
	const query = `
		WITH incoming AS (
			SELECT UNNEST($1::int[]) AS x, UNNEST($2::int[]) AS y
		)
		SELECT COUNT(*)::int
		FROM incoming i
		JOIN pixey_pixels p
		  ON p.x_coordinate = i.x AND p.y_coordinate = i.y
	`
	args := []any{xs, ys}

	var overwrites int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &overwrites, query, args...)

	logQuery(query, args, overwrites, err)

	return overwrites, err
}

// Upsert inserts or repaints a single pixel.
func (r *PixelWriteRepository) Upsert(ctx context.Context, x, y int, color, walletAddress string) error {
	const query = `
		INSERT INTO pixey_pixels (x_coordinate, y_coordinate, color, wallet_address, placed_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (x_coordinate, y_coordinate)
		DO UPDATE SET color = EXCLUDED.color,
		              wallet_address = EXCLUDED.wallet_address,
		              placed_at = NOW()
	`
	args := []any{x, y, color, walletAddress}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}

// BulkUpsert writes a deduplicated batch in one set-based statement.
func (r *PixelWriteRepository) BulkUpsert(ctx context.Context, xs, ys []int64, colors []string, walletAddress string) error {
	const query = `
		WITH incoming AS (
			SELECT UNNEST($1::int[]) AS x, UNNEST($2::int[]) AS y, UNNEST($3::text[]) AS color
		)
		INSERT INTO pixey_pixels (x_coordinate, y_coordinate, color, wallet_address, placed_at)
		SELECT x, y, color, $4, NOW() FROM incoming
		ON CONFLICT (x_coordinate, y_coordinate)
		DO UPDATE SET color = EXCLUDED.color,
		              wallet_address = EXCLUDED.wallet_address,
		              placed_at = NOW()
	`
	args := []any{xs, ys, colors, walletAddress}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}

// InsertHistory appends one placement event to the audit log.
func (r *PixelWriteRepository) InsertHistory(ctx context.Context, x, y int, newColor, walletAddress string) error {
	const query = `
		INSERT INTO pixey_pixel_history (x_coordinate, y_coordinate, new_color, wallet_address, changed_at)
		VALUES ($1, $2, $3, $4, NOW())
	`
	args := []any{x, y, newColor, walletAddress}

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, 1, err)

	return err
}

// BulkInsertHistory appends one audit row per pixel of a batch.
func (r *PixelWriteRepository) BulkInsertHistory(ctx context.Context, xs, ys []int64, colors []string, walletAddress string) error {
	const query = `
		WITH incoming AS (
			SELECT UNNEST($1::int[]) AS x, UNNEST($2::int[]) AS y, UNNEST($3::text[]) AS color
		)
		INSERT INTO pixey_pixel_history (x_coordinate, y_coordinate, new_color, wallet_address, changed_at)
		SELECT x, y, color, $4, NOW() FROM incoming
	`
	args := []any{xs, ys, colors, walletAddress}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}

// EasterEggRepository claims pre-seeded bonus coordinates.
type EasterEggRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewEasterEggRepository(db *sqlx.DB, txGetter TxGetter) *EasterEggRepository {
	return &EasterEggRepository{db: db, txGetter: txGetter}
}

// ClaimAt atomically claims an unclaimed egg at the coordinate. Returns
// (reward, true) when an egg was claimed, (0, false) otherwise.
func (r *EasterEggRepository) ClaimAt(ctx context.Context, x, y int, walletAddress string) (int64, bool, error) {
	const query = `
		UPDATE pixey_easter_eggs
		SET is_claimed = TRUE, claimed_by = $3, claimed_at = NOW()
		WHERE x_coordinate = $1 AND y_coordinate = $2 AND is_claimed = FALSE
		RETURNING reward_pixels
	`
	args := []any{x, y, walletAddress}

	var rewards []int64
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rewards, query, args...)

	logQuery(query, args, rewards, err)

	if err != nil {
		return 0, false, err
	}
	if len(rewards) == 0 {
		return 0, false, nil
	}
	return rewards[0], true, nil
}
