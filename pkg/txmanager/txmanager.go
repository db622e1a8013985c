// Package txmanager runs functions inside serializable transactions over an
// instrumented dbmetrics.DB, retrying on serialization conflicts.
package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/fisiovita/clinic-booking/pkg/dbmetrics"
)

const maxRetries = 3

// ErrTransaction wraps begin/commit failures.
var ErrTransaction = errors.New("txmanager: transaction error")

// TransactionManager begins serializable transactions on a dbmetrics.DB.
type TransactionManager struct {
	db *dbmetrics.DB
}

// NewTransactionManager creates a manager over the instrumented database.
func NewTransactionManager(db *dbmetrics.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction. The transaction
// is exposed to repositories through the context (dbmetrics.WithTx).
// Serialization failures (SQLSTATE 40001) and deadlocks (40P01) are retried
// up to 3 times; any error from fn rolls the transaction back.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
		}

		err = fn(dbmetrics.WithTx(ctx, tx))
		if err != nil {
			_ = tx.Rollback()
			if isRetryable(err) {
				lastErr = err
				continue
			}
			return err
		}

		if err := tx.Commit(); err != nil {
			if isRetryable(err) {
				lastErr = err
				continue
			}
			return fmt.Errorf("%w: commit: %v", ErrTransaction, err)
		}
		return nil
	}

	return fmt.Errorf("%w: retries exhausted: %v", ErrTransaction, lastErr)
}

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "40001" || pqErr.Code == "40P01"
	}
	return false
}
