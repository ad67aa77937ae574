// internal/core/domain/expense.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a simple operating-cost record. It does not touch the ledger.
type Expense struct {
	ID          uuid.UUID       `json:"id"`
	ExpenseType string          `json:"expense_type"`
	Amount      decimal.Decimal `json:"amount"`
	ActorID     int64           `json:"actor_id"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Validate performs domain validation on the expense
func (e *Expense) Validate() error {
	if e.ExpenseType == "" {
		return NewValidationError("expense_type", "is required")
	}
	if !e.Amount.IsPositive() {
		return NewValidationError("amount", "must be positive")
	}
	if e.ActorID <= 0 {
		return NewValidationError("actor_id", "is required")
	}
	return nil
}

// PrepareForStorage assigns the expense id and timestamp
func (e *Expense) PrepareForStorage() {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
}
