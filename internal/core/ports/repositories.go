// internal/core/ports/repositories.go
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/electromart/electromart-be/internal/core/domain"
)

// LedgerRepository is the persistence port for the append-only movement
// ledger. Append never mutates or removes prior entries; every write happens
// inside a transaction scope opened by the Transactor.
type LedgerRepository interface {
	// Append persists a validated movement entry and maintains the derived
	// stock_levels summary in the same scope. The entry comes back with its
	// assigned sequence and timestamp.
	Append(ctx context.Context, entry *domain.MovementEntry) error

	// ListForProduct returns entries for a product in creation (sequence)
	// order, optionally bounded by the filter.
	ListForProduct(ctx context.Context, productID uuid.UUID, filter domain.MovementFilter) ([]domain.MovementEntry, error)

	// SumForProduct computes quantity-on-hand as the sum of signed deltas.
	// Inside a transaction scope it sees the scope's own appends.
	SumForProduct(ctx context.Context, productID uuid.UUID) (int, error)

	// Level reads the materialized summary row for a product.
	Level(ctx context.Context, productID uuid.UUID) (*domain.StockLevel, error)

	// Levels reads all materialized summary rows.
	Levels(ctx context.Context) ([]domain.StockLevel, error)

	// RebuildLevels recomputes the summary table from the ledger and returns
	// the number of corrected rows. Used by the reconciliation worker.
	RebuildLevels(ctx context.Context) (int64, error)
}

// ProductRepository is the persistence port for the product catalog
type ProductRepository interface {
	Save(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	FindBySKU(ctx context.Context, sku string) (*domain.Product, error)

	// FindForUpdate loads the products and takes row locks on them, in
	// ascending id order to avoid deadlocks between concurrent invoices.
	// The lock wait is bounded; exceeding it surfaces as a conflict.
	FindForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Product, error)

	// SoftDelete marks a product deleted. Products referenced by any
	// movement entry are never physically removed.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// PurchaseInvoiceRepository persists purchase invoice aggregates
type PurchaseInvoiceRepository interface {
	Save(ctx context.Context, invoice *domain.PurchaseInvoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.PurchaseInvoice, error)

	// InvoicedQuantity returns the total quantity of a product on the
	// invoice, zero when the invoice does not contain the product.
	InvoicedQuantity(ctx context.Context, invoiceID, productID uuid.UUID) (int, error)
}

// SalesInvoiceRepository persists sales invoice aggregates
type SalesInvoiceRepository interface {
	Save(ctx context.Context, invoice *domain.SalesInvoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.SalesInvoice, error)
	InvoicedQuantity(ctx context.Context, invoiceID, productID uuid.UUID) (int, error)
}

// ReturnRepository persists sales and purchase returns
type ReturnRepository interface {
	SaveSalesReturn(ctx context.Context, ret *domain.SalesReturn) error
	SavePurchaseReturn(ctx context.Context, ret *domain.PurchaseReturn) error

	// ReturnedSalesQuantity sums quantities already returned against a sales
	// invoice/product pair; ReturnedPurchaseQuantity is the purchase-side
	// counterpart. Both see uncommitted rows within the open scope.
	ReturnedSalesQuantity(ctx context.Context, invoiceID, productID uuid.UUID) (int, error)
	ReturnedPurchaseQuantity(ctx context.Context, invoiceID, productID uuid.UUID) (int, error)
}

// ExpenseRepository persists expenses
type ExpenseRepository interface {
	Save(ctx context.Context, expense *domain.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error)
}
