// Package recurring contains recurring expense use cases.
package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
)

// ListRecurringExpensesInput represents the input for listing recurring expense templates.
type ListRecurringExpensesInput struct {
	HouseholdID uuid.UUID
}

// RecurringExpenseItem is one template with its derived generation state.
type RecurringExpenseItem struct {
	RecurringExpense *entity.RecurringExpense
	Category         *entity.Category
	State            entity.GenerationState
	NextOccurrence   time.Time
}

// ListRecurringExpensesOutput represents the output of listing recurring expense templates.
type ListRecurringExpensesOutput struct {
	RecurringExpenses []RecurringExpenseItem
}

// ListRecurringExpensesUseCase handles listing a household's recurring expense templates.
type ListRecurringExpensesUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
	clock         adapter.Clock
}

// NewListRecurringExpensesUseCase creates a new ListRecurringExpensesUseCase instance.
func NewListRecurringExpensesUseCase(
	recurringRepo adapter.RecurringExpenseRepository,
	clock adapter.Clock,
) *ListRecurringExpensesUseCase {
	return &ListRecurringExpensesUseCase{
		recurringRepo: recurringRepo,
		clock:         clock,
	}
}

// Execute lists all recurring expense templates for a household.
func (uc *ListRecurringExpensesUseCase) Execute(
	ctx context.Context,
	input ListRecurringExpensesInput,
) (*ListRecurringExpensesOutput, error) {
	templates, err := uc.recurringRepo.FindByHousehold(ctx, input.HouseholdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}

	now := uc.clock.Now().UTC()

	items := make([]RecurringExpenseItem, 0, len(templates))
	for _, template := range templates {
		items = append(items, RecurringExpenseItem{
			RecurringExpense: template.RecurringExpense,
			Category:         template.Category,
			State:            template.RecurringExpense.StateAt(now),
			NextOccurrence:   nextOccurrence(template.RecurringExpense, now),
		})
	}

	return &ListRecurringExpensesOutput{RecurringExpenses: items}, nil
}
