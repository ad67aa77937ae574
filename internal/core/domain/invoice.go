// internal/core/domain/invoice.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents accepted payment methods
type PaymentMethod string

// Payment method constants
const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentTransfer PaymentMethod = "transfer"
)

// Valid reports whether the payment method is one of the accepted set
func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// PurchaseInvoice is a supplier purchase header owning 1..N detail lines
type PurchaseInvoice struct {
	ID          uuid.UUID               `json:"id"`
	SupplierID  int64                   `json:"supplier_id"`
	InvoiceDate time.Time               `json:"invoice_date"`
	ActorID     int64                   `json:"actor_id"`
	Total       decimal.Decimal         `json:"total"`
	Note        string                  `json:"note,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	Details     []PurchaseInvoiceDetail `json:"details"`
}

// PurchaseInvoiceDetail is a single purchased line
type PurchaseInvoiceDetail struct {
	ID        uuid.UUID       `json:"id"`
	InvoiceID uuid.UUID       `json:"invoice_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// ComputeLineTotal returns quantity x unit cost
func (d *PurchaseInvoiceDetail) ComputeLineTotal() decimal.Decimal {
	return d.UnitCost.Mul(decimal.NewFromInt(int64(d.Quantity)))
}

// Validate performs domain validation on the purchase invoice
func (inv *PurchaseInvoice) Validate() error {
	if inv.SupplierID <= 0 {
		return NewValidationError("supplier_id", "is required")
	}
	if inv.ActorID <= 0 {
		return NewValidationError("actor_id", "is required")
	}
	if len(inv.Details) == 0 {
		return NewValidationError("details", "must contain at least one line")
	}
	for i := range inv.Details {
		d := &inv.Details[i]
		if d.ProductID == uuid.Nil {
			return NewValidationError("details.product_id", "is required")
		}
		if d.Quantity <= 0 {
			return NewValidationError("details.quantity", "must be positive")
		}
		if d.UnitCost.IsNegative() {
			return NewValidationError("details.unit_cost", "cannot be negative")
		}
	}
	return nil
}

// ComputeTotals recomputes every line total and the header total. Stored
// totals are always derived from this; they are never accepted from input.
func (inv *PurchaseInvoice) ComputeTotals() {
	total := decimal.Zero
	for i := range inv.Details {
		inv.Details[i].LineTotal = inv.Details[i].ComputeLineTotal()
		total = total.Add(inv.Details[i].LineTotal)
	}
	inv.Total = total
}

// PrepareForStorage assigns ids and timestamps to the header and its lines
func (inv *PurchaseInvoice) PrepareForStorage() {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	if inv.InvoiceDate.IsZero() {
		inv.InvoiceDate = time.Now()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}
	for i := range inv.Details {
		if inv.Details[i].ID == uuid.Nil {
			inv.Details[i].ID = uuid.New()
		}
		inv.Details[i].InvoiceID = inv.ID
	}
	inv.ComputeTotals()
}

// SalesInvoice is a customer sale header owning 1..N detail lines.
// OverrideActorID/OverrideAt together record the authorization for selling
// below a product's minimum selling price; one without the other is invalid.
type SalesInvoice struct {
	ID              uuid.UUID            `json:"id"`
	CustomerName    string               `json:"customer_name,omitempty"`
	InvoiceDate     time.Time            `json:"invoice_date"`
	DiscountTotal   decimal.Decimal      `json:"discount_total"`
	PaymentMethod   PaymentMethod        `json:"payment_method"`
	ActorID         int64                `json:"actor_id"`
	OverrideActorID *int64               `json:"override_actor_id,omitempty"`
	OverrideAt      *time.Time           `json:"override_at,omitempty"`
	Total           decimal.Decimal      `json:"total"`
	CreatedAt       time.Time            `json:"created_at"`
	Details         []SalesInvoiceDetail `json:"details"`
}

// SalesInvoiceDetail is a single sold line
type SalesInvoiceDetail struct {
	ID        uuid.UUID       `json:"id"`
	InvoiceID uuid.UUID       `json:"invoice_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// ComputeLineTotal returns quantity x unit price minus the line discount
func (d *SalesInvoiceDetail) ComputeLineTotal() decimal.Decimal {
	return d.UnitPrice.Mul(decimal.NewFromInt(int64(d.Quantity))).Sub(d.Discount)
}

// HasOverride reports whether the header carries a price-floor authorization
func (inv *SalesInvoice) HasOverride() bool {
	return inv.OverrideActorID != nil && inv.OverrideAt != nil
}

// Validate performs domain validation on the sales invoice
func (inv *SalesInvoice) Validate() error {
	if inv.ActorID <= 0 {
		return NewValidationError("actor_id", "is required")
	}
	if !inv.PaymentMethod.Valid() {
		return NewValidationError("payment_method", "unknown payment method")
	}
	if inv.DiscountTotal.IsNegative() {
		return NewValidationError("discount_total", "cannot be negative")
	}
	if (inv.OverrideActorID == nil) != (inv.OverrideAt == nil) {
		return NewValidationError("override", "actor and date must be set together")
	}
	if len(inv.Details) == 0 {
		return NewValidationError("details", "must contain at least one line")
	}
	for i := range inv.Details {
		d := &inv.Details[i]
		if d.ProductID == uuid.Nil {
			return NewValidationError("details.product_id", "is required")
		}
		if d.Quantity <= 0 {
			return NewValidationError("details.quantity", "must be positive")
		}
		if d.UnitPrice.IsNegative() {
			return NewValidationError("details.unit_price", "cannot be negative")
		}
		if d.Discount.IsNegative() {
			return NewValidationError("details.discount", "cannot be negative")
		}
		if d.ComputeLineTotal().IsNegative() {
			return NewValidationError("details.discount", "cannot exceed the line amount")
		}
	}
	return nil
}

// ComputeTotals recomputes every line total and the header total, applying
// the header-level discount after the line sums
func (inv *SalesInvoice) ComputeTotals() {
	total := decimal.Zero
	for i := range inv.Details {
		inv.Details[i].LineTotal = inv.Details[i].ComputeLineTotal()
		total = total.Add(inv.Details[i].LineTotal)
	}
	inv.Total = total.Sub(inv.DiscountTotal)
}

// PrepareForStorage assigns ids and timestamps to the header and its lines
func (inv *SalesInvoice) PrepareForStorage() {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	if inv.InvoiceDate.IsZero() {
		inv.InvoiceDate = time.Now()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}
	for i := range inv.Details {
		if inv.Details[i].ID == uuid.Nil {
			inv.Details[i].ID = uuid.New()
		}
		inv.Details[i].InvoiceID = inv.ID
	}
	inv.ComputeTotals()
}
