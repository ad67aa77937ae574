// internal/adapters/db/transactor.go
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

type txContextKey struct{}

// txFromContext extracts the transaction handle carried by the context
func txFromContext(ctx context.Context) (pgx.Tx, bool) {
	tx, ok := ctx.Value(txContextKey{}).(pgx.Tx)
	return tx, ok
}

// InTx reports whether the context carries an open transaction scope
func InTx(ctx context.Context) bool {
	_, ok := txFromContext(ctx)
	return ok
}

// Transactor implements ports.Transactor over pgx. The transaction handle
// travels in the context, never on a shared field, so concurrent scopes on
// different goroutines cannot collide.
type Transactor struct {
	db     *Database
	logger *slog.Logger
}

var _ ports.Transactor = (*Transactor)(nil)

// NewTransactor creates a new transactor
func NewTransactor(db *Database, logger *slog.Logger) *Transactor {
	return &Transactor{
		db:     db,
		logger: logger.With(slog.String("component", "transactor")),
	}
}

// WithinTx executes fn inside a transaction scope. A nested call joins the
// open scope rather than beginning a second one. The scope commits on normal
// return; any error, panic or context cancellation rolls back every write
// made inside it, ledger appends included.
func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := t.db.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Bound every lock wait in the scope so contended product rows surface
	// as a retryable conflict instead of blocking indefinitely.
	lockTimeout := t.db.config.LockTimeout
	if lockTimeout <= 0 {
		lockTimeout = 2 * time.Second
	}
	if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", lockTimeout.Milliseconds())); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to set lock timeout: %w", err)
	}

	txCtx := context.WithValue(ctx, txContextKey{}, tx)

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return fmt.Errorf("tx failed: %v, rollback failed: %w", err, rbErr)
		}
		return translateConflict(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return translateConflict(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

// translateConflict maps lock-wait and serialization failures onto the
// domain's retryable conflict error
func translateConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "55P03", "40001", "40P01": // lock_not_available, serialization_failure, deadlock_detected
			return fmt.Errorf("%w: %v", domain.ErrConflict, err)
		}
	}
	return err
}
