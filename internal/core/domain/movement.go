// internal/core/domain/movement.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementKind classifies why a ledger entry exists
type MovementKind string

// Movement kind constants
const (
	MovementPurchase       MovementKind = "purchase"
	MovementSale           MovementKind = "sale"
	MovementReturnSale     MovementKind = "return_sale"
	MovementReturnPurchase MovementKind = "return_purchase"
	MovementAdjust         MovementKind = "adjust"
)

// Reference table names recorded on ledger entries
const (
	RefPurchaseInvoices = "purchase_invoices"
	RefSalesInvoices    = "sales_invoices"
	RefSalesReturns     = "sales_returns"
	RefPurchaseReturns  = "purchase_returns"
	RefAdjustments      = "adjustments"
)

// Valid reports whether the kind belongs to the closed enumeration
func (k MovementKind) Valid() bool {
	switch k {
	case MovementPurchase, MovementSale, MovementReturnSale, MovementReturnPurchase, MovementAdjust:
		return true
	}
	return false
}

// MovementEntry is a single append-only stock movement. Entries are never
// updated or deleted; corrections are expressed as additional signed entries.
type MovementEntry struct {
	ID             uuid.UUID       `json:"id"`
	Sequence       int64           `json:"sequence"`
	ProductID      uuid.UUID       `json:"product_id"`
	Kind           MovementKind    `json:"kind"`
	QtyDelta       int             `json:"qty_delta"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	ReferenceTable string          `json:"reference_table"`
	ReferenceID    uuid.UUID       `json:"reference_id"`
	ActorID        int64           `json:"actor_id"`
	Note           string          `json:"note,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// Validate checks the entry before it is appended to the ledger
func (m *MovementEntry) Validate() error {
	if m.ProductID == uuid.Nil {
		return NewValidationError("product_id", "is required")
	}
	if !m.Kind.Valid() {
		return NewValidationError("kind", "unknown movement kind")
	}
	if m.QtyDelta == 0 {
		return NewValidationError("qty_delta", "must be non-zero")
	}
	if m.UnitCost.IsNegative() {
		return NewValidationError("unit_cost", "cannot be negative")
	}
	if m.ActorID <= 0 {
		return NewValidationError("actor_id", "is required")
	}

	// The delta sign is fixed per kind; only Adjust entries may go either way.
	switch m.Kind {
	case MovementPurchase, MovementReturnSale:
		if m.QtyDelta < 0 {
			return NewValidationError("qty_delta", "must be positive for "+string(m.Kind))
		}
	case MovementSale, MovementReturnPurchase:
		if m.QtyDelta > 0 {
			return NewValidationError("qty_delta", "must be negative for "+string(m.Kind))
		}
	}

	return nil
}

// PrepareForStorage assigns the entry id and timestamp
func (m *MovementEntry) PrepareForStorage() {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
}

// MovementFilter bounds a ledger listing
type MovementFilter struct {
	Kind           MovementKind
	ReferenceTable string
	From           *time.Time
	To             *time.Time
	Limit          int
	Offset         int
}

// StockLevel is the materialized, ledger-derived quantity for a product.
// It is a cache of SUM(qty_delta), never the source of truth.
type StockLevel struct {
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updated_at"`
}
