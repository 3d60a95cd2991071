package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/vibegame/pixey-backend/internal/models"
)

// BurnWriteRepository records verified burns. The unique signature
// column is the replay guard: a second insert of the same signature
// affects zero rows.
type BurnWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBurnWriteRepository(db *sqlx.DB, txGetter TxGetter) *BurnWriteRepository {
	return &BurnWriteRepository{db: db, txGetter: txGetter}
}

// Insert records a burn audit row. Returns false when the signature was
// already credited.
func (r *BurnWriteRepository) Insert(ctx context.Context, burn models.BurnTransactionDB) (bool, error) {
	const query = `
		INSERT INTO pixey_burn_transactions
			(signature, wallet_address, tokens_burned, pixels_received, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (signature) DO NOTHING
	`
	args := []any{burn.Signature, burn.WalletAddress, burn.TokensBurned, burn.PixelsReceived, burn.Status}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
