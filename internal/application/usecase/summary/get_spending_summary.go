// Package summary contains spending summary use cases.
package summary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
)

// GetSpendingSummaryInput represents the input for getting a spending summary.
type GetSpendingSummaryInput struct {
	HouseholdID uuid.UUID
	Month       time.Time
}

// GetSpendingSummaryOutput represents the output of getting a spending summary.
type GetSpendingSummaryOutput struct {
	Month       time.Time
	Rows        []entity.SpendingSummaryRow
	TotalSpent  decimal.Decimal
	TotalBudget decimal.Decimal
}

// GetSpendingSummaryUseCase handles computing the per-category spending summary.
type GetSpendingSummaryUseCase struct {
	categoryRepo adapter.CategoryRepository
	expenseRepo  adapter.ExpenseRepository
	budgetRepo   adapter.BudgetRepository
	cache        adapter.SummaryCache
	logger       *slog.Logger
}

// NewGetSpendingSummaryUseCase creates a new GetSpendingSummaryUseCase instance.
func NewGetSpendingSummaryUseCase(
	categoryRepo adapter.CategoryRepository,
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
	cache adapter.SummaryCache,
	logger *slog.Logger,
) *GetSpendingSummaryUseCase {
	return &GetSpendingSummaryUseCase{
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
		budgetRepo:   budgetRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Execute computes the spending summary for a household and month.
func (uc *GetSpendingSummaryUseCase) Execute(
	ctx context.Context,
	input GetSpendingSummaryInput,
) (*GetSpendingSummaryOutput, error) {
	month := entity.MonthStart(input.Month)

	if cached, err := uc.cache.Get(ctx, input.HouseholdID, month); err != nil {
		// Cache trouble must not take the summary down.
		uc.logger.Warn("summary cache read failed",
			"household_id", input.HouseholdID,
			"error", err,
		)
	} else if cached != nil {
		return uc.buildOutput(month, cached), nil
	}

	categories, err := uc.categoryRepo.FindByHousehold(ctx, input.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}

	expenses, err := uc.expenseRepo.FindByHouseholdAndMonth(ctx, input.HouseholdID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}

	budgets, err := uc.budgetRepo.FindByHouseholdAndMonth(ctx, input.HouseholdID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to get budgets: %w", err)
	}

	// Totals fold over the raw sets, not the rows, so expenses under
	// since-deleted categories still count.
	summary := &entity.SpendingSummary{
		Rows:        Summarize(categories, expenses, budgets),
		TotalSpent:  TotalSpent(expenses),
		TotalBudget: TotalBudget(budgets),
	}

	if err := uc.cache.Set(ctx, input.HouseholdID, month, summary); err != nil {
		uc.logger.Warn("summary cache write failed",
			"household_id", input.HouseholdID,
			"error", err,
		)
	}

	return uc.buildOutput(month, summary), nil
}

func (uc *GetSpendingSummaryUseCase) buildOutput(
	month time.Time,
	summary *entity.SpendingSummary,
) *GetSpendingSummaryOutput {
	return &GetSpendingSummaryOutput{
		Month:       month,
		Rows:        summary.Rows,
		TotalSpent:  summary.TotalSpent,
		TotalBudget: summary.TotalBudget,
	}
}
