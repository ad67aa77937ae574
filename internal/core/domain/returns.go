// internal/core/domain/returns.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// SalesReturn records goods returned by a customer against a sales invoice.
// The original invoice is never edited; the stock effect is expressed as a
// compensating ReturnSale ledger entry referencing this record.
type SalesReturn struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	ActorID   int64     `json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate performs domain validation on the sales return
func (r *SalesReturn) Validate() error {
	if r.InvoiceID == uuid.Nil {
		return NewValidationError("invoice_id", "is required")
	}
	if r.ProductID == uuid.Nil {
		return NewValidationError("product_id", "is required")
	}
	if r.Quantity <= 0 {
		return NewValidationError("quantity", "must be positive")
	}
	if r.ActorID <= 0 {
		return NewValidationError("actor_id", "is required")
	}
	return nil
}

// PrepareForStorage assigns the return id and timestamp
func (r *SalesReturn) PrepareForStorage() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
}

// PurchaseReturn records goods sent back to a supplier against a purchase
// invoice, compensated by a ReturnPurchase ledger entry.
type PurchaseReturn struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
	ActorID   int64     `json:"actor_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate performs domain validation on the purchase return
func (r *PurchaseReturn) Validate() error {
	if r.InvoiceID == uuid.Nil {
		return NewValidationError("invoice_id", "is required")
	}
	if r.ProductID == uuid.Nil {
		return NewValidationError("product_id", "is required")
	}
	if r.Quantity <= 0 {
		return NewValidationError("quantity", "must be positive")
	}
	if r.ActorID <= 0 {
		return NewValidationError("actor_id", "is required")
	}
	return nil
}

// PrepareForStorage assigns the return id and timestamp
func (r *PurchaseReturn) PrepareForStorage() {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
}
