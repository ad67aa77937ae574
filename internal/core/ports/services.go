// internal/core/ports/services.go
package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/electromart/electromart-be/internal/core/domain"
)

// PurchaseLineInput is one line of a purchase invoice request
type PurchaseLineInput struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseInvoiceInput is the payload for creating a purchase invoice
type CreatePurchaseInvoiceInput struct {
	SupplierID  int64               `json:"supplier_id"`
	InvoiceDate time.Time           `json:"invoice_date"`
	ActorID     int64               `json:"actor_id"`
	Note        string              `json:"note,omitempty"`
	Lines       []PurchaseLineInput `json:"lines"`
}

// SalesLineInput is one line of a sales invoice request
type SalesLineInput struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
}

// CreateSalesInvoiceInput is the payload for creating a sales invoice.
// OverrideActorID/OverrideAt authorize selling below a product's minimum
// selling price; both must be present for the authorization to hold.
type CreateSalesInvoiceInput struct {
	CustomerName    string               `json:"customer_name,omitempty"`
	InvoiceDate     time.Time            `json:"invoice_date"`
	DiscountTotal   decimal.Decimal      `json:"discount_total"`
	PaymentMethod   domain.PaymentMethod `json:"payment_method"`
	ActorID         int64                `json:"actor_id"`
	OverrideActorID *int64               `json:"override_actor_id,omitempty"`
	OverrideAt      *time.Time           `json:"override_at,omitempty"`
	Lines           []SalesLineInput     `json:"lines"`
}

// CreateReturnInput is the payload for creating a sales or purchase return
type CreateReturnInput struct {
	InvoiceID uuid.UUID `json:"invoice_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	ActorID   int64     `json:"actor_id"`
}

// InvoiceService validates and persists invoices together with their ledger
// effects as one atomic unit
type InvoiceService interface {
	CreatePurchaseInvoice(ctx context.Context, input CreatePurchaseInvoiceInput) (*domain.PurchaseInvoice, error)
	CreateSalesInvoice(ctx context.Context, input CreateSalesInvoiceInput) (*domain.SalesInvoice, error)
	GetPurchaseInvoice(ctx context.Context, id uuid.UUID) (*domain.PurchaseInvoice, error)
	GetSalesInvoice(ctx context.Context, id uuid.UUID) (*domain.SalesInvoice, error)
}

// ReturnsService records returns against existing invoices and reverses
// their stock effect with compensating ledger entries
type ReturnsService interface {
	CreateSalesReturn(ctx context.Context, input CreateReturnInput) (*domain.SalesReturn, error)
	CreatePurchaseReturn(ctx context.Context, input CreateReturnInput) (*domain.PurchaseReturn, error)
}

// StockSnapshot is the projected state for a product
type StockSnapshot struct {
	ProductID  uuid.UUID `json:"product_id"`
	Quantity   int       `json:"quantity"`
	LowStock   bool      `json:"low_stock"`
	OutOfStock bool      `json:"out_of_stock"`
}

// ProductService manages the product catalog
type ProductService interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// ExpenseService records operating expenses
type ExpenseService interface {
	CreateExpense(ctx context.Context, expense *domain.Expense) error
	GetExpense(ctx context.Context, id uuid.UUID) (*domain.Expense, error)
}

// StockService derives current stock state strictly from the ledger
type StockService interface {
	QuantityOnHand(ctx context.Context, productID uuid.UUID) (int, error)
	Snapshot(ctx context.Context, productID uuid.UUID) (*StockSnapshot, error)
	IsLowStock(ctx context.Context, productID uuid.UUID, threshold int) (bool, error)
	IsOutOfStock(ctx context.Context, productID uuid.UUID) (bool, error)
	ListMovements(ctx context.Context, productID uuid.UUID, filter domain.MovementFilter) ([]domain.MovementEntry, error)
}
