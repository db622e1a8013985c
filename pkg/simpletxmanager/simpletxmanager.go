// Package simpletxmanager is the metrics-free counterpart of txmanager,
// used when the service runs without Prometheus instrumentation.
package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/fisiovita/clinic-booking/pkg/dbmetrics"
)

const maxRetries = 3

var ErrTransaction = errors.New("simpletxmanager: transaction error")

// TransactionManager begins serializable transactions on a plain *sql.DB.
type TransactionManager struct {
	db *sql.DB
}

func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// DoSerializable runs fn inside a SERIALIZABLE transaction carried through
// the context, retrying serialization conflicts up to 3 times.
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if err != nil {
			return fmt.Errorf("%w: begin: %v", ErrTransaction, err)
		}

		wrapped := &dbmetrics.SqlTxWrapper{Tx: tx}
		err = fn(dbmetrics.WithTx(ctx, wrapped))
		if err != nil {
			_ = wrapped.Rollback()
			if isRetryable(err) {
				lastErr = err
				continue
			}
			return err
		}

		if err := wrapped.Commit(); err != nil {
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
