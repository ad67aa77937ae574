// internal/handlers/product.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	service ports.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service ports.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "product")),
	}
}

// CreateProduct handles POST /api/v1/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	product := req.ToDomain()
	if err := h.service.CreateProduct(ctx, product); err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "product created",
		slog.String("product_id", product.ID.String()),
		slog.String("sku", product.SKU))

	respondJSON(h.logger, w, http.StatusCreated, product)
}

// GetProduct handles GET /api/v1/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.service.GetProduct(ctx, id)
	if err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, product)
}

// UpdateProduct handles PUT /api/v1/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	product := req.ToDomain()
	product.ID = id

	if err := h.service.UpdateProduct(ctx, product); err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "product updated",
		slog.String("product_id", id.String()))

	respondJSON(h.logger, w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/v1/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.service.DeleteProduct(ctx, id); err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "product deleted",
		slog.String("product_id", id.String()))

	respondJSON(h.logger, w, http.StatusOK, map[string]string{
		"message":    "Product deleted successfully",
		"product_id": id.String(),
	})
}

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	Name                string          `json:"name"`
	SKU                 string          `json:"sku"`
	CategoryID          int64           `json:"category_id,omitempty"`
	SupplierID          int64           `json:"supplier_id,omitempty"`
	DefaultCost         decimal.Decimal `json:"default_cost"`
	DefaultSellingPrice decimal.Decimal `json:"default_selling_price"`
	MinSellingPrice     decimal.Decimal `json:"min_selling_price"`
	LowStockThreshold   int             `json:"low_stock_threshold,omitempty"`
}

// Validate validates the product request
func (r *ProductRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("name is required")
	}
	if r.SKU == "" {
		return fmt.Errorf("sku is required")
	}
	if r.DefaultCost.IsNegative() {
		return fmt.Errorf("default_cost cannot be negative")
	}
	if r.DefaultSellingPrice.IsNegative() {
		return fmt.Errorf("default_selling_price cannot be negative")
	}
	if r.MinSellingPrice.IsNegative() {
		return fmt.Errorf("min_selling_price cannot be negative")
	}
	if r.MinSellingPrice.GreaterThan(r.DefaultSellingPrice) {
		return fmt.Errorf("min_selling_price cannot exceed default_selling_price")
	}
	if r.LowStockThreshold < 0 {
		return fmt.Errorf("low_stock_threshold cannot be negative")
	}
	return nil
}

// ToDomain converts the request to a domain model
func (r *ProductRequest) ToDomain() *domain.Product {
	return &domain.Product{
		Name:                r.Name,
		SKU:                 r.SKU,
		CategoryID:          r.CategoryID,
		SupplierID:          r.SupplierID,
		DefaultCost:         r.DefaultCost,
		DefaultSellingPrice: r.DefaultSellingPrice,
		MinSellingPrice:     r.MinSellingPrice,
		LowStockThreshold:   r.LowStockThreshold,
	}
}
