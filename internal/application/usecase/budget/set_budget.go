// Package budget contains budget management use cases.
package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

// SetBudgetInput represents the input for setting a budget.
type SetBudgetInput struct {
	HouseholdID uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Month       time.Time
}

// SetBudgetOutput represents the output of setting a budget.
type SetBudgetOutput struct {
	Budget *entity.Budget
}

// SetBudgetUseCase handles creating or replacing a category budget for a month.
type SetBudgetUseCase struct {
	budgetRepo   adapter.BudgetRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.SummaryCache
	logger       *slog.Logger
}

// NewSetBudgetUseCase creates a new SetBudgetUseCase instance.
func NewSetBudgetUseCase(
	budgetRepo adapter.BudgetRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.SummaryCache,
	logger *slog.Logger,
) *SetBudgetUseCase {
	return &SetBudgetUseCase{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Execute upserts the budget for a category and month. Setting a budget that
// already exists replaces its amount.
func (uc *SetBudgetUseCase) Execute(ctx context.Context, input SetBudgetInput) (*SetBudgetOutput, error) {
	if input.Amount.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeNegativeBudgetAmount,
			"budget amount must not be negative",
			domainerror.ErrNegativeBudgetAmount,
		)
	}

	category, err := uc.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil || (!category.IsShared() && *category.HouseholdID != input.HouseholdID) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBdgCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForBudget,
		)
	}

	budget := entity.NewBudget(input.HouseholdID, input.CategoryID, input.Amount, input.Month)

	if err := uc.budgetRepo.Upsert(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to set budget: %w", err)
	}

	if err := uc.cache.Invalidate(ctx, input.HouseholdID, budget.Month); err != nil {
		uc.logger.Warn("summary cache invalidation failed",
			"household_id", input.HouseholdID,
			"error", err,
		)
	}

	return &SetBudgetOutput{Budget: budget}, nil
}
