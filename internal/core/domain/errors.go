// internal/core/domain/errors.go
package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ValidationError reports a business-rule violation in the caller's input.
// The enclosing transaction, if any was opened, is rolled back.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NewValidationError creates a validation error for a field
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// InsufficientStockError reports a sales line that would drive
// quantity-on-hand negative. Surfaced distinctly from generic validation
// so callers can offer a reduce-quantity flow.
type InsufficientStockError struct {
	ProductID uuid.UUID
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s: %d available, %d requested",
		e.ProductID, e.Available, e.Requested)
}

// NotFoundError reports a missing or mismatched reference target
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// NewNotFoundError creates a not-found error for an entity reference
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ErrConflict marks a retryable concurrency conflict. Two transactions raced
// on the same product's stock; the operation was retried once before this
// surfaced to the caller.
var ErrConflict = errors.New("concurrent stock conflict, retry the operation")

// IsValidation reports whether err is a business-rule violation
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsInsufficientStock reports whether err is an insufficient-stock rejection
func IsInsufficientStock(err error) bool {
	var se *InsufficientStockError
	return errors.As(err, &se)
}

// IsNotFound reports whether err is a missing-reference rejection
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsConflict reports whether err is a retryable concurrency conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
