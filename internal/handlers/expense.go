// internal/handlers/expense.go
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
	"github.com/electromart/electromart-be/internal/handlers/middleware"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	service ports.ExpenseService
	logger  *slog.Logger
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(service ports.ExpenseService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "expense")),
	}
}

// CreateExpense handles POST /api/v1/expenses
func (h *ExpenseHandler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actorID, ok := middleware.ActorFromContext(ctx)
	if !ok {
		respondError(h.logger, w, http.StatusUnauthorized, "missing actor identity")
		return
	}

	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	expense := req.ToDomain(actorID)
	if err := h.service.CreateExpense(ctx, expense); err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "expense recorded",
		slog.String("expense_id", expense.ID.String()),
		slog.String("expense_type", expense.ExpenseType),
		slog.String("amount", expense.Amount.String()))

	respondJSON(h.logger, w, http.StatusCreated, expense)
}

// GetExpense handles GET /api/v1/expenses/{id}
func (h *ExpenseHandler) GetExpense(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(h.logger, w, http.StatusBadRequest, "Invalid expense ID format")
		return
	}

	expense, err := h.service.GetExpense(ctx, id)
	if err != nil {
		respondDomainError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, http.StatusOK, expense)
}

// CreateExpenseRequest represents the request body for recording an expense
type CreateExpenseRequest struct {
	ExpenseType string          `json:"expense_type"`
	Amount      decimal.Decimal `json:"amount"`
	Note        string          `json:"note,omitempty"`
}

// Validate validates the create expense request
func (r *CreateExpenseRequest) Validate() error {
	if r.ExpenseType == "" {
		return fmt.Errorf("expense_type is required")
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("amount must be positive")
	}
	return nil
}

// ToDomain converts the request to a domain model
func (r *CreateExpenseRequest) ToDomain(actorID int64) *domain.Expense {
	return &domain.Expense{
		ExpenseType: r.ExpenseType,
		Amount:      r.Amount,
		ActorID:     actorID,
		Note:        r.Note,
	}
}
