// internal/adapters/db/return_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

// returnRepository implements ports.ReturnRepository
type returnRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewReturnRepository creates a new return repository
func NewReturnRepository(db *Database, logger *slog.Logger) ports.ReturnRepository {
	return &returnRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "returns")),
	}
}

// SaveSalesReturn persists a sales return record
func (r *returnRepository) SaveSalesReturn(ctx context.Context, ret *domain.SalesReturn) error {
	_, err := r.db.Querier(ctx).Exec(ctx, `
		INSERT INTO sales_returns (
			id, invoice_id, product_id, quantity, reason, actor_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ret.ID, ret.InvoiceID, ret.ProductID, ret.Quantity, ret.Reason, ret.ActorID, ret.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sales return: %w", err)
	}

	r.logger.DebugContext(ctx, "sales return saved",
		slog.String("return_id", ret.ID.String()),
		slog.String("invoice_id", ret.InvoiceID.String()))

	return nil
}

// SavePurchaseReturn persists a purchase return record
func (r *returnRepository) SavePurchaseReturn(ctx context.Context, ret *domain.PurchaseReturn) error {
	_, err := r.db.Querier(ctx).Exec(ctx, `
		INSERT INTO purchase_returns (
			id, invoice_id, product_id, quantity, reason, actor_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ret.ID, ret.InvoiceID, ret.ProductID, ret.Quantity, ret.Reason, ret.ActorID, ret.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase return: %w", err)
	}

	r.logger.DebugContext(ctx, "purchase return saved",
		slog.String("return_id", ret.ID.String()),
		slog.String("invoice_id", ret.InvoiceID.String()))

	return nil
}

// ReturnedSalesQuantity sums quantities already returned against a sales
// invoice/product pair
func (r *returnRepository) ReturnedSalesQuantity(ctx context.Context, invoiceID, productID uuid.UUID) (int, error) {
	var qty int
	err := r.db.Querier(ctx).QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity), 0)
		FROM sales_returns
		WHERE invoice_id = $1 AND product_id = $2`,
		invoiceID, productID,
	).Scan(&qty)
	if err != nil {
		return 0, fmt.Errorf("failed to sum returned quantity: %w", err)
	}
	return qty, nil
}

// ReturnedPurchaseQuantity sums quantities already returned against a
// purchase invoice/product pair
func (r *returnRepository) ReturnedPurchaseQuantity(ctx context.Context, invoiceID, productID uuid.UUID) (int, error) {
	var qty int
	err := r.db.Querier(ctx).QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity), 0)
		FROM purchase_returns
		WHERE invoice_id = $1 AND product_id = $2`,
		invoiceID, productID,
	).Scan(&qty)
	if err != nil {
		return 0, fmt.Errorf("failed to sum returned quantity: %w", err)
	}
	return qty, nil
}
