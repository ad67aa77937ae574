// internal/core/domain/product.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog product
type Product struct {
	ID                  uuid.UUID       `json:"id"`
	Name                string          `json:"name"`
	SKU                 string          `json:"sku"`
	CategoryID          int64           `json:"category_id"`
	SupplierID          int64           `json:"supplier_id"`
	DefaultCost         decimal.Decimal `json:"default_cost"`
	DefaultSellingPrice decimal.Decimal `json:"default_selling_price"`
	MinSellingPrice     decimal.Decimal `json:"min_selling_price"`
	LowStockThreshold   int             `json:"low_stock_threshold"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DeletedAt           *time.Time      `json:"deleted_at,omitempty"`
}

// Validate performs domain validation on the product
func (p *Product) Validate() error {
	if p.Name == "" {
		return NewValidationError("name", "is required")
	}
	if p.SKU == "" {
		return NewValidationError("sku", "is required")
	}
	if p.DefaultCost.IsNegative() {
		return NewValidationError("default_cost", "cannot be negative")
	}
	if p.DefaultSellingPrice.IsNegative() {
		return NewValidationError("default_selling_price", "cannot be negative")
	}
	if p.MinSellingPrice.IsNegative() {
		return NewValidationError("min_selling_price", "cannot be negative")
	}
	if p.MinSellingPrice.GreaterThan(p.DefaultSellingPrice) {
		return NewValidationError("min_selling_price", "cannot exceed default selling price")
	}
	if p.LowStockThreshold < 0 {
		return NewValidationError("low_stock_threshold", "cannot be negative")
	}
	return nil
}

// PrepareForStorage prepares the product for database storage
func (p *Product) PrepareForStorage() {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
