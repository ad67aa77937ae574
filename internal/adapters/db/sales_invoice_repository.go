// internal/adapters/db/sales_invoice_repository.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

// salesInvoiceRepository implements ports.SalesInvoiceRepository
type salesInvoiceRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewSalesInvoiceRepository creates a new sales invoice repository
func NewSalesInvoiceRepository(db *Database, logger *slog.Logger) ports.SalesInvoiceRepository {
	return &salesInvoiceRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "sales_invoice")),
	}
}

// Save persists the header and all detail lines inside the caller's scope
func (r *salesInvoiceRepository) Save(ctx context.Context, invoice *domain.SalesInvoice) error {
	q := r.db.Querier(ctx)

	_, err := q.Exec(ctx, `
		INSERT INTO sales_invoices (
			id, customer_name, invoice_date, discount_total, payment_method,
			actor_id, override_actor_id, override_at, total, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		invoice.ID, invoice.CustomerName, invoice.InvoiceDate, invoice.DiscountTotal,
		invoice.PaymentMethod, invoice.ActorID, invoice.OverrideActorID, invoice.OverrideAt,
		invoice.Total, invoice.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save sales invoice header: %w", err)
	}

	batch := &pgx.Batch{}
	for i := range invoice.Details {
		d := &invoice.Details[i]
		batch.Queue(`
			INSERT INTO sales_invoice_details (
				id, invoice_id, product_id, quantity, unit_price, discount, line_total
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			d.ID, d.InvoiceID, d.ProductID, d.Quantity, d.UnitPrice, d.Discount, d.LineTotal,
		)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for range invoice.Details {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to save sales invoice detail: %w", err)
		}
	}

	r.logger.DebugContext(ctx, "sales invoice saved",
		slog.String("invoice_id", invoice.ID.String()),
		slog.Int("details", len(invoice.Details)))

	return nil
}

// FindByID retrieves the invoice aggregate with its detail lines
func (r *salesInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.SalesInvoice, error) {
	q := r.db.Querier(ctx)

	invoice := &domain.SalesInvoice{}
	var customerName sql.NullString
	err := q.QueryRow(ctx, `
		SELECT id, customer_name, invoice_date, discount_total, payment_method,
		       actor_id, override_actor_id, override_at, total, created_at
		FROM sales_invoices WHERE id = $1`, id,
	).Scan(
		&invoice.ID, &customerName, &invoice.InvoiceDate, &invoice.DiscountTotal,
		&invoice.PaymentMethod, &invoice.ActorID, &invoice.OverrideActorID, &invoice.OverrideAt,
		&invoice.Total, &invoice.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find sales invoice: %w", err)
	}
	invoice.CustomerName = customerName.String

	rows, err := q.Query(ctx, `
		SELECT id, invoice_id, product_id, quantity, unit_price, discount, line_total
		FROM sales_invoice_details WHERE invoice_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query sales invoice details: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d domain.SalesInvoiceDetail
		if err := rows.Scan(&d.ID, &d.InvoiceID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Discount, &d.LineTotal); err != nil {
			return nil, fmt.Errorf("failed to scan sales invoice detail: %w", err)
		}
		invoice.Details = append(invoice.Details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sales invoice details: %w", err)
	}

	return invoice, nil
}

// InvoicedQuantity sums the invoiced quantity of a product on the invoice
func (r *salesInvoiceRepository) InvoicedQuantity(ctx context.Context, invoiceID, productID uuid.UUID) (int, error) {
	var qty int
	err := r.db.Querier(ctx).QueryRow(ctx, `
		SELECT COALESCE(SUM(quantity), 0)
		FROM sales_invoice_details
		WHERE invoice_id = $1 AND product_id = $2`,
		invoiceID, productID,
	).Scan(&qty)
	if err != nil {
		return 0, fmt.Errorf("failed to sum invoiced quantity: %w", err)
	}
	return qty, nil
}
