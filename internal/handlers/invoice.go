// internal/handlers/invoice.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/internal/handlers/middleware"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	service ports.InvoiceService
	logger  *slog.Logger
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(service ports.InvoiceService, logger *slog.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "invoice")),
	}
}

// CreatePurchase handles POST /api/v1/invoices/purchase
func (h *InvoiceHandler) CreatePurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := middleware.ActorFromContext(ctx)
	if !ok {
		respondError(h.logger, w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	var req CreatePurchaseInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	invoice, err := h.service.CreatePurchaseInvoice(ctx, req.ToInput(actorID))
	if err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "purchase invoice created",
		slog.String("invoice_id", invoice.ID.String()),
		slog.Int64("supplier_id", invoice.SupplierID),
		slog.String("total", invoice.Total.String()))

	respondJSON(h.logger, w, http.StatusCreated, invoice)
}

// CreateSales handles POST /api/v1/invoices/sales
func (h *InvoiceHandler) CreateSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := middleware.ActorFromContext(ctx)
	if !ok {
		respondError(h.logger, w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	var req CreateSalesInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	invoice, err := h.service.CreateSalesInvoice(ctx, req.ToInput(actorID))
	if err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "sales invoice created",
		slog.String("invoice_id", invoice.ID.String()),
		slog.String("total", invoice.Total.String()),
		slog.Bool("override", invoice.HasOverride()))

	respondJSON(h.logger, w, http.StatusCreated, invoice)
}

// GetPurchase handles GET /api/v1/invoices/purchase/{id}
func (h *InvoiceHandler) GetPurchase(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	invoice, err := h.service.GetPurchaseInvoice(ctx, id)
	if err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, invoice)
}

// GetSales handles GET /api/v1/invoices/sales/{id}
func (h *InvoiceHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	invoice, err := h.service.GetSalesInvoice(ctx, id)
	if err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, invoice)
}

// Request/Response DTOs

// PurchaseLineRequest is one line of a purchase invoice request body
type PurchaseLineRequest struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
}

// CreatePurchaseInvoiceRequest represents the request body for recording a purchase
type CreatePurchaseInvoiceRequest struct {
	SupplierID  int64                 `json:"supplier_id"`
	InvoiceDate *time.Time            `json:"invoice_date,omitempty"`
	Note        string                `json:"note,omitempty"`
	Lines       []PurchaseLineRequest `json:"lines"`
}

// Validate validates the create purchase invoice request
func (r *CreatePurchaseInvoiceRequest) Validate() error {
	if r.SupplierID <= 0 {
		return fmt.Errorf("supplier_id is required")
	}
	if len(r.Lines) == 0 {
		return fmt.Errorf("lines must contain at least one entry")
	}
	for i, line := range r.Lines {
		if line.ProductID == uuid.Nil {
			return fmt.Errorf("lines[%d].product_id is required", i)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("lines[%d].quantity must be positive", i)
		}
		if line.UnitCost.IsNegative() {
			return fmt.Errorf("lines[%d].unit_cost cannot be negative", i)
		}
	}
	return nil
}

// ToInput converts the request to a service input
func (r *CreatePurchaseInvoiceRequest) ToInput(actorID int64) ports.CreatePurchaseInvoiceInput {
	input := ports.CreatePurchaseInvoiceInput{
		SupplierID: r.SupplierID,
		ActorID:    actorID,
		Note:       r.Note,
		Lines:      make([]ports.PurchaseLineInput, 0, len(r.Lines)),
	}
	if r.InvoiceDate != nil {
		input.InvoiceDate = *r.InvoiceDate
	}
	for _, line := range r.Lines {
		input.Lines = append(input.Lines, ports.PurchaseLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitCost:  line.UnitCost,
		})
	}
	return input
}

// SalesLineRequest is one line of a sales invoice request body
type SalesLineRequest struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount,omitempty"`
}

// CreateSalesInvoiceRequest represents the request body for recording a sale
type CreateSalesInvoiceRequest struct {
	CustomerName    string             `json:"customer_name,omitempty"`
	InvoiceDate     *time.Time         `json:"invoice_date,omitempty"`
	DiscountTotal   decimal.Decimal    `json:"discount_total,omitempty"`
	PaymentMethod   string             `json:"payment_method"`
	OverrideActorID *int64             `json:"override_actor_id,omitempty"`
	OverrideAt      *time.Time         `json:"override_at,omitempty"`
	Lines           []SalesLineRequest `json:"lines"`
}

// Validate validates the create sales invoice request
func (r *CreateSalesInvoiceRequest) Validate() error {
	if !domain.PaymentMethod(r.PaymentMethod).Valid() {
		return fmt.Errorf("payment_method must be one of cash, card, transfer")
	}
	if r.DiscountTotal.IsNegative() {
		return fmt.Errorf("discount_total cannot be negative")
	}
	if (r.OverrideActorID == nil) != (r.OverrideAt == nil) {
		return fmt.Errorf("override_actor_id and override_at must be set together")
	}
	if len(r.Lines) == 0 {
		return fmt.Errorf("lines must contain at least one entry")
	}
	for i, line := range r.Lines {
		if line.ProductID == uuid.Nil {
			return fmt.Errorf("lines[%d].product_id is required", i)
		}
		if line.Quantity <= 0 {
			return fmt.Errorf("lines[%d].quantity must be positive", i)
		}
		if line.UnitPrice.IsNegative() {
			return fmt.Errorf("lines[%d].unit_price cannot be negative", i)
		}
		if line.Discount.IsNegative() {
			return fmt.Errorf("lines[%d].discount cannot be negative", i)
		}
	}
	return nil
}

// ToInput converts the request to a service input
func (r *CreateSalesInvoiceRequest) ToInput(actorID int64) ports.CreateSalesInvoiceInput {
	input := ports.CreateSalesInvoiceInput{
		CustomerName:    r.CustomerName,
		DiscountTotal:   r.DiscountTotal,
		PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
		ActorID:         actorID,
		OverrideActorID: r.OverrideActorID,
		OverrideAt:      r.OverrideAt,
		Lines:           make([]ports.SalesLineInput, 0, len(r.Lines)),
	}
	if r.InvoiceDate != nil {
		input.InvoiceDate = *r.InvoiceDate
	}
	for _, line := range r.Lines {
		input.Lines = append(input.Lines, ports.SalesLineInput{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			Discount:  line.Discount,
		})
	}
	return input
}
