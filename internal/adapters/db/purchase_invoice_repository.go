// internal/adapters/db/purchase_invoice_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

// purchaseInvoiceRepository implements ports.PurchaseInvoiceRepository
type purchaseInvoiceRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewPurchaseInvoiceRepository creates a new purchase invoice repository
func NewPurchaseInvoiceRepository(db *Database, logger *slog.Logger) ports.PurchaseInvoiceRepository {
	return &purchaseInvoiceRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "purchase_invoice")),
	}
}

// Save persists the header and all detail lines. Callers run this inside a
// transaction scope; the batch keeps the round trips down.
func (r *purchaseInvoiceRepository) Save(ctx context.Context, invoice *domain.PurchaseInvoice) error {
	q := r.db.Querier(ctx)

	_, err := q.Exec(ctx, `
		INSERT INTO purchase_invoices (
			id, supplier_id, invoice_date, actor_id, total, note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		invoice.ID, invoice.SupplierID, invoice.InvoiceDate, invoice.ActorID,
		invoice.Total, invoice.Note, invoice.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save purchase invoice header: %w", err)
	}

	batch := &pgx.Batch{}
	for i := range invoice.Details {
		d := &invoice.Details[i]
		batch.Queue(`
			INSERT INTO purchase_invoice_details (
				id, invoice_id, product_id, quantity, unit_cost, line_total
			) VALUES ($1, $2, $3, $4, $5, $6)`,
			d.ID, d.InvoiceID, d.ProductID, d.Quantity, d.UnitCost, d.LineTotal,
		)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for range invoice.Details {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to save purchase invoice detail: %w", err)
		}
	}

	r.logger.DebugContext(ctx, "purchase invoice saved",
		slog.String("invoice_id", invoice.ID.String()),
		slog.Int("details", len(invoice.Details)))

	return nil
}

// FindByID retrieves the invoice aggregate with its detail lines
func (r *purchaseInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseInvoice, error) {
	q := r.db.Querier(ctx)

	invoice := &domain.PurchaseInvoice{}
	err := q.QueryRow(ctx, `
		SELECT id, supplier_id, invoice_date, actor_id, total, note, created_at
		FROM purchase_invoices WHERE id = $1`, id,
	).Scan(
		&invoice.ID, &invoice.SupplierID, &invoice.InvoiceDate, &invoice.ActorID,
		&invoice.Total, &invoice.Note, &invoice.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find purchase invoice: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT id, invoice_id, product_id, quantity, unit_cost, line_total
		FROM purchase_invoice_details WHERE invoice_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchase invoice details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.PurchaseInvoiceDetail
		if err := rows.Scan(&d.ID, &d.InvoiceID, &d.ProductID, &d.Quantity, &d.UnitCost, &d.LineTotal); err != nil {
			return nil, fmt.Errorf("failed to scan purchase invoice detail: %w", err)
		}
		invoice.Details = append(invoice.Details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase invoice details: %w", err)
	}

	return invoice, nil
}

// InvoicedQuantity sums the invoiced quantity of a product on the invoice
func (r *purchaseInvoiceRepository) InvoicedQuantity(ctx context.Context, invoiceID, productID uuid.UUID) (int, error) {
	var qty int
	err := r.db.Querier(ctx).QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity), 0)
		FROM purchase_invoice_details
		WHERE invoice_id = $1 AND product_id = $2`,
		invoiceID, productID,
	).Scan(&qty)
	if err != nil {
		return 0, fmt.Errorf("failed to sum invoiced quantity: %w", err)
	}
	return qty, nil
}
