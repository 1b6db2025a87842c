// Package budget contains budget management use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	HouseholdID uuid.UUID
	Month       time.Time
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Month   time.Time
	Budgets []*entity.Budget
}

// ListBudgetsUseCase handles listing a household's budgets for a month.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute lists all budgets for a household and month.
func (uc *ListBudgetsUseCase) Execute(
	ctx context.Context,
	input ListBudgetsInput,
) (*ListBudgetsOutput, error) {
	month := entity.MonthStart(input.Month)

	budgets, err := uc.budgetRepo.FindByHouseholdAndMonth(ctx, input.HouseholdID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	return &ListBudgetsOutput{
		Month:   month,
		Budgets: budgets,
	}, nil
}
