package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// withTx commits when fn succeeds and rolls back otherwise.
func withTx(db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	return withTxContext(context.Background(), db, fn)
}

func withTxContext(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			zap.L().Warn("failed to roll back transaction", zap.Error(rbErr))
		}
		return err
	}

	return tx.Commit()
}
