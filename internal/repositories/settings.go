package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/vibegame/pixey-backend/internal/models"
)

// GameSettingsReadRepository reads the settings singleton.
type GameSettingsReadRepository struct {
	db *sqlx.DB
}

func NewGameSettingsReadRepository(db *sqlx.DB) *GameSettingsReadRepository {
	return &GameSettingsReadRepository{db: db}
}

// Get returns the singleton row, or (nil, nil) when it is missing.
func (r *GameSettingsReadRepository) Get(ctx context.Context) (*models.GameSettingsDB, error) {
	const query = `
		SELECT id, current_stage, total_tokens_burned, board_width, board_height, updated_at
		FROM pixey_game_settings
		WHERE id = 1
	`

	var settings models.GameSettingsDB
	err := r.db.GetContext(ctx, &settings, query)

	logQuery(query, nil, settings, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// GameSettingsWriteRepository mutates the settings singleton under the
// request transaction. The row lock makes the stage transition a
// serialized read-modify-write.
type GameSettingsWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewGameSettingsWriteRepository(db *sqlx.DB, txGetter TxGetter) *GameSettingsWriteRepository {
	return &GameSettingsWriteRepository{db: db, txGetter: txGetter}
}

// GetForUpdate locks and returns the singleton row.
func (r *GameSettingsWriteRepository) GetForUpdate(ctx context.Context) (*models.GameSettingsDB, error) {
	const query = `
		SELECT id, current_stage, total_tokens_burned, board_width, board_height, updated_at
		FROM pixey_game_settings
		WHERE id = 1
		FOR UPDATE
	`

	var settings models.GameSettingsDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &settings, query)

	logQuery(query, nil, settings, err)

	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Update writes the cumulative burn total and (possibly advanced) stage.
// Board dimensions only ever grow.
func (r *GameSettingsWriteRepository) Update(ctx context.Context, stage int, boardSize int, totalBurned int64) error {
	const query = `
		UPDATE pixey_game_settings
		SET current_stage = $1,
		    board_width = $2,
		    board_height = $2,
		    total_tokens_burned = $3,
		    updated_at = NOW()
		WHERE id = 1
	`
	args := []any{stage, boardSize, totalBurned}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)

	return err
}
