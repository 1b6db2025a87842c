// Package budget contains budget management use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

// DeleteBudgetInput represents the input for deleting a budget.
type DeleteBudgetInput struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
}

// DeleteBudgetUseCase handles deleting budgets.
type DeleteBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.SummaryCache
	logger     *slog.Logger
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	cache adapter.SummaryCache,
	logger *slog.Logger,
) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
		logger:     logger,
	}
}

// Execute deletes a budget.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	budget, err := uc.budgetRepo.FindByID(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("failed to get budget: %w", err)
	}
	if budget == nil || budget.HouseholdID != input.HouseholdID {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	if err := uc.budgetRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete budget: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.HouseholdID, budget.Month); err != nil {
		uc.logger.Warn("summary cache invalidation failed",
			"household_id", input.HouseholdID,
			"error", err,
		)
	}

	return nil
}
