// Package repositories contains the PostgreSQL and Redis data access
// layer. Write repositories accept a txGetter so that all writes of one
// request share the transaction opened by the tx middleware.
package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/vibegame/pixey-backend/internal/logger"
)

// TxGetter pulls the request-scoped transaction from the context.
// A nil return falls back to the pooled connection.
type TxGetter func(ctx context.Context) *sqlx.Tx

func executor(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a collapsed query with its arguments, result, and error
// on a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
