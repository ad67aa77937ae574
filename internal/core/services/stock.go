// internal/core/services/stock.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

// StockService projects current stock state strictly from the movement
// ledger. The stock_levels summary and any redis snapshot are caches; the
// ledger sum is the only authority.
type StockService struct {
	ledger   ports.LedgerRepository
	products ports.ProductRepository
	logger   *slog.Logger
}

var _ ports.StockService = (*StockService)(nil)

// NewStockService creates a new stock service
func NewStockService(ledger ports.LedgerRepository, products ports.ProductRepository, logger *slog.Logger) *StockService {
	return &StockService{
		ledger:   ledger,
		products: products,
		logger:   logger.With(slog.String("service", "stock")),
	}
}

// QuantityOnHand returns the sum of signed deltas for the product. Within a
// transaction scope it sees the scope's own uncommitted appends.
func (s *StockService) QuantityOnHand(ctx context.Context, productID uuid.UUID) (int, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		return 0, domain.NewNotFoundError("product", productID.String())
	}

	qty, err := s.ledger.SumForProduct(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("failed to project quantity on hand: %w", err)
	}
	return qty, nil
}

// Snapshot returns the projected quantity with the product's own threshold
// applied for the low/out flags
func (s *StockService) Snapshot(ctx context.Context, productID uuid.UUID) (*ports.StockSnapshot, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		return nil, domain.NewNotFoundError("product", productID.String())
	}

	qty, err := s.ledger.SumForProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to project quantity on hand: %w", err)
	}

	return &ports.StockSnapshot{
		ProductID:  productID,
		Quantity:   qty,
		LowStock:   qty <= product.LowStockThreshold,
		OutOfStock: qty <= 0,
	}, nil
}

// IsLowStock reports whether the projected quantity is at or below threshold
func (s *StockService) IsLowStock(ctx context.Context, productID uuid.UUID, threshold int) (bool, error) {
	qty, err := s.QuantityOnHand(ctx, productID)
	if err != nil {
		return false, err
	}
	return qty <= threshold, nil
}

// IsOutOfStock reports whether the projected quantity is zero or below
func (s *StockService) IsOutOfStock(ctx context.Context, productID uuid.UUID) (bool, error) {
	qty, err := s.QuantityOnHand(ctx, productID)
	if err != nil {
		return false, err
	}
	return qty <= 0, nil
}

// ListMovements returns the product's ledger entries in creation order
func (s *StockService) ListMovements(ctx context.Context, productID uuid.UUID, filter domain.MovementFilter) ([]domain.MovementEntry, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	if product == nil {
		return nil, domain.NewNotFoundError("product", productID.String())
	}

	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 500
	}

	entries, err := s.ledger.ListForProduct(ctx, productID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements: %w", err)
	}
	return entries, nil
}
