// Package recurring contains recurring expense use cases.
package recurring

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
)

// DeleteRecurringExpenseInput represents the input for deleting a recurring expense template.
type DeleteRecurringExpenseInput struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
}

// DeleteRecurringExpenseUseCase handles deleting recurring expense templates.
type DeleteRecurringExpenseUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
}

// NewDeleteRecurringExpenseUseCase creates a new DeleteRecurringExpenseUseCase instance.
func NewDeleteRecurringExpenseUseCase(
	recurringRepo adapter.RecurringExpenseRepository,
) *DeleteRecurringExpenseUseCase {
	return &DeleteRecurringExpenseUseCase{
		recurringRepo: recurringRepo,
	}
}

// Execute deletes a recurring expense template. Expenses already generated
// from the template are left untouched.
func (uc *DeleteRecurringExpenseUseCase) Execute(
	ctx context.Context,
	input DeleteRecurringExpenseInput,
) error {
	if _, err := findHouseholdTemplate(ctx, uc.recurringRepo, input.ID, input.HouseholdID); err != nil {
		return err
	}

	if err := uc.recurringRepo.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to delete recurring expense: %w", err)
	}

	return nil
}
