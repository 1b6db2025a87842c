// Package recurring contains recurring expense use cases.
package recurring

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

// UpdateRecurringExpenseInput represents the input for updating a recurring expense template.
// Nil pointer fields are left unchanged.
type UpdateRecurringExpenseInput struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	CategoryID  *uuid.UUID
	Amount      *decimal.Decimal
	Description *string
	Notes       *string
	DayOfMonth  *int
	IsActive    *bool
}

// UpdateRecurringExpenseOutput represents the output of updating a recurring expense template.
type UpdateRecurringExpenseOutput struct {
	RecurringExpense *entity.RecurringExpense
	State            entity.GenerationState
}

// UpdateRecurringExpenseUseCase handles updating recurring expense templates.
type UpdateRecurringExpenseUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
	categoryRepo  adapter.CategoryRepository
	clock         adapter.Clock
}

// NewUpdateRecurringExpenseUseCase creates a new UpdateRecurringExpenseUseCase instance.
func NewUpdateRecurringExpenseUseCase(
	recurringRepo adapter.RecurringExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *UpdateRecurringExpenseUseCase {
	return &UpdateRecurringExpenseUseCase{
		recurringRepo: recurringRepo,
		categoryRepo:  categoryRepo,
		clock:         clock,
	}
}

// Execute updates an existing recurring expense template.
func (uc *UpdateRecurringExpenseUseCase) Execute(
	ctx context.Context,
	input UpdateRecurringExpenseInput,
) (*UpdateRecurringExpenseOutput, error) {
	recurring, err := findHouseholdTemplate(ctx, uc.recurringRepo, input.ID, input.HouseholdID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != nil {
		if err := validateCategoryVisible(ctx, uc.categoryRepo, *input.CategoryID, input.HouseholdID); err != nil {
			return nil, err
		}
		recurring.CategoryID = *input.CategoryID
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeRecNegativeAmount,
				"amount must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		recurring.Amount = *input.Amount
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, domainerror.NewRecurringError(
				domainerror.ErrCodeMissingRecFields,
				"description must not be empty",
				domainerror.ErrMissingRecurringFields,
			)
		}
		recurring.Description = description
	}

	if input.Notes != nil {
		recurring.Notes = strings.TrimSpace(*input.Notes)
	}

	if input.DayOfMonth != nil {
		if err := validateDayOfMonth(*input.DayOfMonth); err != nil {
			return nil, err
		}
		recurring.DayOfMonth = *input.DayOfMonth
	}

	if input.IsActive != nil {
		recurring.IsActive = *input.IsActive
	}

	recurring.UpdatedAt = time.Now().UTC()

	if err := uc.recurringRepo.Update(ctx, recurring); err != nil {
		return nil, fmt.Errorf("failed to update recurring expense: %w", err)
	}

	return &UpdateRecurringExpenseOutput{
		RecurringExpense: recurring,
		State:            recurring.StateAt(uc.clock.Now().UTC()),
	}, nil
}

// findHouseholdTemplate loads a template and checks household ownership.
func findHouseholdTemplate(
	ctx context.Context,
	recurringRepo adapter.RecurringExpenseRepository,
	id uuid.UUID,
	householdID uuid.UUID,
) (*entity.RecurringExpense, error) {
	recurring, err := recurringRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get recurring expense: %w", err)
	}
	if recurring == nil {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotFound,
			"recurring expense not found",
			domainerror.ErrRecurringExpenseNotFound,
		)
	}
	if recurring.HouseholdID != householdID {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeRecurringNotInHousehold,
			"recurring expense does not belong to household",
			domainerror.ErrRecurringNotInHousehold,
		)
	}
	return recurring, nil
}
