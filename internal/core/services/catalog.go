// internal/core/services/catalog.go
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

// ProductService manages the product catalog
type ProductService struct {
	products ports.ProductRepository
	logger   *slog.Logger
}

var _ ports.ProductService = (*ProductService)(nil)

// NewProductService creates a new product service
func NewProductService(products ports.ProductRepository, logger *slog.Logger) *ProductService {
	return &ProductService{
		products: products,
		logger:   logger.With(slog.String("service", "product")),
	}
}

// CreateProduct validates and persists a new product
func (s *ProductService) CreateProduct(ctx context.Context, product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	existing, err := s.products.FindBySKU(ctx, product.SKU)
	if err != nil {
		return fmt.Errorf("failed to check sku: %w", err)
	}
	if existing != nil {
		return domain.NewValidationError("sku", "already exists")
	}

	product.PrepareForStorage()
	if err := s.products.Save(ctx, product); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID.String()),
		slog.String("sku", product.SKU))
	return nil
}

// GetProduct retrieves a product by id
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, domain.NewNotFoundError("product", id.String())
	}
	return product, nil
}

// UpdateProduct validates and persists product changes
func (s *ProductService) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	existing, err := s.products.FindByID(ctx, product.ID)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if existing == nil {
		return domain.NewNotFoundError("product", product.ID.String())
	}

	return s.products.Update(ctx, product)
}

// DeleteProduct soft-deletes a product. Products referenced by movement
// entries stay; the repository rejects the delete.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get product: %w", err)
	}
	if existing == nil {
		return domain.NewNotFoundError("product", id.String())
	}

	if err := s.products.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "product deleted", slog.String("product_id", id.String()))
	return nil
}

// ExpenseService records operating expenses
type ExpenseService struct {
	expenses ports.ExpenseRepository
	logger   *slog.Logger
}

var _ ports.ExpenseService = (*ExpenseService)(nil)

// NewExpenseService creates a new expense service
func NewExpenseService(expenses ports.ExpenseRepository, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{
		expenses: expenses,
		logger:   logger.With(slog.String("service", "expense")),
	}
}

// CreateExpense validates and persists an expense
func (s *ExpenseService) CreateExpense(ctx context.Context, expense *domain.Expense) error {
	if err := expense.Validate(); err != nil {
		return err
	}
	expense.PrepareForStorage()
	if err := s.expenses.Save(ctx, expense); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "expense recorded",
		slog.String("expense_id", expense.ID.String()),
		slog.String("type", expense.ExpenseType),
		slog.String("amount", expense.Amount.String()))
	return nil
}

// GetExpense retrieves an expense by id
func (s *ExpenseService) GetExpense(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	expense, err := s.expenses.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	if expense == nil {
		return nil, domain.NewNotFoundError("expense", id.String())
	}
	return expense, nil
}
