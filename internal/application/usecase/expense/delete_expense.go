// Package expense contains expense management use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
)

// DeleteExpenseInput represents the input for deleting an expense.
type DeleteExpenseInput struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
}

// DeleteExpenseUseCase handles deleting expenses.
type DeleteExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
	cache       adapter.SummaryCache
	logger      *slog.Logger
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	cache adapter.SummaryCache,
	logger *slog.Logger,
) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo: expenseRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Execute soft deletes an expense.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) error {
	expense, err := findHouseholdExpense(ctx, uc.expenseRepo, input.ID, input.HouseholdID)
	if err != nil {
		return err
	}

	if err := uc.expenseRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	invalidateSummary(ctx, uc.cache, uc.logger, expense.HouseholdID, expense.Date)

	return nil
}
