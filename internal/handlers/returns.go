// internal/handlers/returns.go
package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/electromart/electromart-be/internal/core/ports"
	"github.com/electromart/electromart-be/internal/handlers/middleware"
)

// ReturnsHandler handles return-related HTTP requests
type ReturnsHandler struct {
	service ports.ReturnsService
	logger  *slog.Logger
}

// NewReturnsHandler creates a new returns handler
func NewReturnsHandler(service ports.ReturnsService, logger *slog.Logger) *ReturnsHandler {
	return &ReturnsHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "returns")),
	}
}

// CreateSalesReturn handles POST /api/v1/returns/sales
func (h *ReturnsHandler) CreateSalesReturn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := middleware.ActorFromContext(ctx)
	if !ok {
		respondError(h.logger, w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	var req CreateReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	ret, err := h.service.CreateSalesReturn(ctx, req.ToInput(actorID))
	if err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "sales return recorded",
		slog.String("return_id", ret.ID.String()),
		slog.String("invoice_id", ret.InvoiceID.String()),
		slog.Int("quantity", ret.Quantity))

	respondJSON(h.logger, w, http.StatusCreated, ret)
}

// CreatePurchaseReturn handles POST /api/v1/returns/purchase
func (h *ReturnsHandler) CreatePurchaseReturn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := middleware.ActorFromContext(ctx)
	if !ok {
		respondError(h.logger, w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	var req CreateReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	ret, err := h.service.CreatePurchaseReturn(ctx, req.ToInput(actorID))
	if err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "purchase return recorded",
		slog.String("return_id", ret.ID.String()),
		slog.String("invoice_id", ret.InvoiceID.String()),
		slog.Int("quantity", ret.Quantity))

	respondJSON(h.logger, w, http.StatusCreated, ret)
}

// CreateReturnRequest represents the request body for recording a return
type CreateReturnRequest struct {
	InvoiceID uuid.UUID `json:"invoice_id"`
	ProductID uuid.UUID `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason,omitempty"`
}

// Validate validates the create return request
func (r *CreateReturnRequest) Validate() error {
	if r.InvoiceID == uuid.Nil {
		return fmt.Errorf("invoice_id is required")
	}
	if r.ProductID == uuid.Nil {
		return fmt.Errorf("product_id is required")
	}
	if r.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	return nil
}

// ToInput converts the request to a service input
func (r *CreateReturnRequest) ToInput(actorID int64) ports.CreateReturnInput {
	return ports.CreateReturnInput{
		InvoiceID: r.InvoiceID,
		ProductID: r.ProductID,
		Quantity:  r.Quantity,
		Reason:    r.Reason,
		ActorID:   actorID,
	}
}
