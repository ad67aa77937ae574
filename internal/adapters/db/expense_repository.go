// internal/adapters/db/expense_repository.go
package db

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/electromart/electromart-be/internal/core/domain"
	"github.com/electromart/electromart-be/internal/core/ports"
)

// expenseRepository implements ports.ExpenseRepository
type expenseRepository struct {
	db     *Database
	logger *slog.Logger
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *Database, logger *slog.Logger) ports.ExpenseRepository {
	return &expenseRepository{
		db:     db,
		logger: logger.With(slog.String("repository", "expense")),
	}
}

// Save persists an expense record
func (r *expenseRepository) Save(ctx context.Context, expense *domain.Expense) error {
	_, err := r.db.Querier(ctx).Exec(ctx, `
		INSERT INTO expenses (
			id, expense_type, amount, actor_id, note, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		expense.ID, expense.ExpenseType, expense.Amount, expense.ActorID, expense.Note, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	return nil
}

// FindByID retrieves an expense by id
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Expense, error) {
	e := &domain.Expense{}
	err := r.db.Querier(ctx).QueryRow(ctx, `
		SELECT id, expense_type, amount, actor_id, note, created_at
		FROM expenses WHERE id = $1`, id,
	).Scan(&e.ID, &e.ExpenseType, &e.Amount, &e.ActorID, &e.Note, &e.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}
	return e, nil
}
