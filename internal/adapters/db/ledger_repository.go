// internal/adapters/db/ledger_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

// ledgerRepository implements ports.LedgerRepository over the append-only
// stock_movements table. There is no UPDATE or DELETE statement in this file
// on purpose; compensating entries are the only way to amend history.
type ledgerRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *Database, logger *slog.Logger) ports.LedgerRepository {
	return &ledgerRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "ledger")),
	}
}

// Append persists a movement entry and folds its delta into the stock_levels
// summary within the same scope
func (r *ledgerRepository) Append(ctx context.Context, entry *domain.MovementEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	entry.PrepareForStorage()

	q := r.db.Querier(ctx)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, entry.ProductID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to resolve product: %w", err)
	}
	if !exists {
		return domain.NewNotFoundError("product", entry.ProductID.String())
	}

	query := `
		INSERT INTO stock_movements (
			id, product_id, kind, qty_delta, unit_cost,
			reference_table, reference_id, actor_id, note, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING sequence, created_at`

	err = q.QueryRow(ctx, query,
		entry.ID, entry.ProductID, entry.Kind, entry.QtyDelta, entry.UnitCost,
		entry.ReferenceTable, entry.ReferenceID, entry.ActorID, entry.Note, entry.CreatedAt,
	).Scan(&entry.Sequence, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append movement entry: %w", err)
	}

	_, err = q.Exec(ctx, `
		INSERT INTO stock_levels (product_id, quantity, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (product_id) DO UPDATE
		SET quantity = stock_levels.quantity + EXCLUDED.quantity, updated_at = NOW()`,
		entry.ProductID, entry.QtyDelta,
	)
	if err != nil {
		return fmt.Errorf("failed to maintain stock level: %w", err)
	}

	r.logger.DebugContext(ctx, "movement entry appended",
		slog.String("entry_id", entry.ID.String()),
		slog.String("product_id", entry.ProductID.String()),
		slog.String("kind", string(entry.Kind)),
		slog.Int("qty_delta", entry.QtyDelta))

	return nil
}

// ListForProduct returns entries in sequence order, bounded by the filter
func (r *ledgerRepository) ListForProduct(ctx context.Context, productID uuid.UUID, filter domain.MovementFilter) ([]domain.MovementEntry, error) {
	qb := squirrel.Select(
		"id", "sequence", "product_id", "kind", "qty_delta", "unit_cost",
		"reference_table", "reference_id", "actor_id", "note", "created_at",
	).From("stock_movements").
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("sequence ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Kind != "" {
		qb = qb.Where(squirrel.Eq{"kind": filter.Kind})
	}
	if filter.ReferenceTable != "" {
		qb = qb.Where(squirrel.Eq{"reference_table": filter.ReferenceTable})
	}
	if filter.From != nil {
		qb = qb.Where(squirrel.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		qb = qb.Where(squirrel.LtOrEq{"created_at": *filter.To})
	}
	if filter.Limit > 0 {
		qb = qb.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		qb = qb.Offset(uint64(filter.Offset))
	}

	sql, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build movement query: %w", err)
	}

	rows, err := r.db.Querier(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	var entries []domain.MovementEntry
	for rows.Next() {
		var e domain.MovementEntry
		if err := rows.Scan(
			&e.ID, &e.Sequence, &e.ProductID, &e.Kind, &e.QtyDelta, &e.UnitCost,
			&e.ReferenceTable, &e.ReferenceID, &e.ActorID, &e.Note, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan movement entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movements: %w", err)
	}

	return entries, nil
}

// SumForProduct computes quantity-on-hand from the ledger itself
func (r *ledgerRepository) SumForProduct(ctx context.Context, productID uuid.UUID) (int, error) {
	var qty int
	err := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT COALESCE(SUM(qty_delta), 0) FROM stock_movements WHERE product_id = $1`,
		productID,
	).Scan(&qty)
	if err != nil {
		return 0, fmt.Errorf("failed to sum movements: %w", err)
	}
	return qty, nil
}

// Level reads the materialized summary row for a product
func (r *ledgerRepository) Level(ctx context.Context, productID uuid.UUID) (*domain.StockLevel, error) {
	var level domain.StockLevel
	err := r.db.Querier(ctx).QueryRow(ctx,
		`SELECT product_id, quantity, updated_at FROM stock_levels WHERE product_id = $1`,
		productID,
	).Scan(&level.ProductID, &level.Quantity, &level.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read stock level: %w", err)
	}
	return &level, nil
}

// Levels reads all materialized summary rows
func (r *ledgerRepository) Levels(ctx context.Context) ([]domain.StockLevel, error) {
	rows, err := r.db.Querier(ctx).Query(ctx,
		`SELECT product_id, quantity, updated_at FROM stock_levels ORDER BY product_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stock levels: %w", err)
	}
	defer rows.Close()

	var levels []domain.StockLevel
	for rows.Next() {
		var l domain.StockLevel
		if err := rows.Scan(&l.ProductID, &l.Quantity, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan stock level: %w", err)
		}
		levels = append(levels, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock levels: %w", err)
	}

	return levels, nil
}

// RebuildLevels recomputes the summary from the ledger and corrects drift.
// The summary is only ever a cache; this makes it byte-for-byte rebuildable.
func (r *ledgerRepository) RebuildLevels(ctx context.Context) (int64, error) {
	tag, err := r.db.Querier(ctx).Exec(ctx, `
		WITH ledger_sums AS (
			SELECT product_id, COALESCE(SUM(qty_delta), 0) AS quantity
			FROM stock_movements
			GROUP BY product_id
		)
		INSERT INTO stock_levels (product_id, quantity, updated_at)
		SELECT product_id, quantity, NOW() FROM ledger_sums
		ON CONFLICT (product_id) DO UPDATE
		SET quantity = EXCLUDED.quantity, updated_at = NOW()
		WHERE stock_levels.quantity IS DISTINCT FROM EXCLUDED.quantity`)
	if err != nil {
		return 0, fmt.Errorf("failed to rebuild stock levels: %w", err)
	}

	if corrected := tag.RowsAffected(); corrected > 0 {
		r.logger.WarnContext(ctx, "stock level drift corrected",
			slog.Int64("rows", corrected))
		return corrected, nil
	}

	return 0, nil
}
