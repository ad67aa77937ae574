// internal/adapters/db/product_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

// productRepository implements ports.ProductRepository
type productRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *Database, logger *slog.Logger) ports.ProductRepository {
	return &productRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "product")),
	}
}

const productColumns = `
	id, name, sku, category_id, supplier_id,
	default_cost, default_selling_price, min_selling_price,
	low_stock_threshold, created_at, updated_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	p := &domain.Product{}
	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.CategoryID, &p.SupplierID,
		&p.DefaultCost, &p.DefaultSellingPrice, &p.MinSellingPrice,
		&p.LowStockThreshold, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Save creates a new product
func (r *productRepository) Save(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (
			id, name, sku, category_id, supplier_id,
			default_cost, default_selling_price, min_selling_price,
			low_stock_threshold, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		)`

	_, err := r.db.Querier(ctx).Exec(ctx, query,
		product.ID, product.Name, product.SKU, product.CategoryID, product.SupplierID,
		product.DefaultCost, product.DefaultSellingPrice, product.MinSellingPrice,
		product.LowStockThreshold, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}

	r.logger.DebugContext(ctx, "product saved",
		slog.String("product_id", product.ID.String()),
		slog.String("sku", product.SKU))

	return nil
}

// Update updates price and metadata fields of an existing product
func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products SET
			name = $2, category_id = $3, supplier_id = $4,
			default_cost = $5, default_selling_price = $6, min_selling_price = $7,
			low_stock_threshold = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL`

	product.UpdatedAt = time.Now()

	tag, err := r.db.Querier(ctx).Exec(ctx, query,
		product.ID, product.Name, product.CategoryID, product.SupplierID,
		product.DefaultCost, product.DefaultSellingPrice, product.MinSellingPrice,
		product.LowStockThreshold, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("product", product.ID.String())
	}

	return nil
}

// FindByID retrieves a product by id
func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `SELECT` + productColumns + `
		FROM products WHERE id = $1 AND deleted_at IS NULL`

	p, err := scanProduct(r.db.Querier(ctx).QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return p, nil
}

// FindBySKU retrieves a product by SKU
func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	query := `SELECT` + productColumns + `
		FROM products WHERE sku = $1 AND deleted_at IS NULL`

	p, err := scanProduct(r.db.Querier(ctx).QueryRow(ctx, query, sku))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find product by sku: %w", err)
	}
	return p, nil
}

// FindForUpdate loads products and row-locks them in ascending id order.
// Lock acquisition is bounded by the transaction's lock_timeout; a timeout
// surfaces as a retryable conflict through the transactor.
func (r *productRepository) FindForUpdate(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Product, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*domain.Product{}, nil
	}

	ordered := make([]uuid.UUID, len(ids))
	copy(ordered, ids)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].String() < ordered[j].String()
	})

	query := `SELECT` + productColumns + `
		FROM products
		WHERE id = ANY($1) AND deleted_at IS NULL
		ORDER BY id
		FOR UPDATE`

	rows, err := r.db.Querier(ctx).Query(ctx, query, ordered)
	if err != nil {
		return nil, fmt.Errorf("failed to lock products: %w", err)
	}
	defer rows.Close()

	products := make(map[uuid.UUID]*domain.Product, len(ordered))
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products[p.ID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// SoftDelete marks a product deleted unless the ledger references it
func (r *productRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	q := r.db.Querier(ctx)

	var referenced bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM stock_movements WHERE product_id = $1)`, id,
	).Scan(&referenced)
	if err != nil {
		return fmt.Errorf("failed to check ledger references: %w", err)
	}
	if referenced {
		return domain.NewValidationError("product", "cannot be deleted while referenced by stock movements")
	}

	tag, err := q.Exec(ctx,
		`UPDATE products SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError("product", id.String())
	}

	r.logger.InfoContext(ctx, "product soft deleted",
		slog.String("product_id", id.String()))

	return nil
}
