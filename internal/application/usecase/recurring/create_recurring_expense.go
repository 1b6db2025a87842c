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

// CreateRecurringExpenseInput represents the input for creating a recurring expense template.
type CreateRecurringExpenseInput struct {
	HouseholdID uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Notes       string
	DayOfMonth  int
}

// CreateRecurringExpenseOutput represents the output of creating a recurring expense template.
type CreateRecurringExpenseOutput struct {
	RecurringExpense *entity.RecurringExpense
	State            entity.GenerationState
}

// CreateRecurringExpenseUseCase handles creating recurring expense templates.
type CreateRecurringExpenseUseCase struct {
	recurringRepo adapter.RecurringExpenseRepository
	categoryRepo  adapter.CategoryRepository
	clock         adapter.Clock
}

// NewCreateRecurringExpenseUseCase creates a new CreateRecurringExpenseUseCase instance.
func NewCreateRecurringExpenseUseCase(
	recurringRepo adapter.RecurringExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *CreateRecurringExpenseUseCase {
	return &CreateRecurringExpenseUseCase{
		recurringRepo: recurringRepo,
		categoryRepo:  categoryRepo,
		clock:         clock,
	}
}

// Execute creates a new recurring expense template.
func (uc *CreateRecurringExpenseUseCase) Execute(
	ctx context.Context,
	input CreateRecurringExpenseInput,
) (*CreateRecurringExpenseOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	if err := validateCategoryVisible(ctx, uc.categoryRepo, input.CategoryID, input.HouseholdID); err != nil {
		return nil, err
	}

	recurring := entity.NewRecurringExpense(
		input.HouseholdID,
		input.UserID,
		input.CategoryID,
		input.Amount,
		strings.TrimSpace(input.Description),
		strings.TrimSpace(input.Notes),
		input.DayOfMonth,
	)

	if err := uc.recurringRepo.Create(ctx, recurring); err != nil {
		return nil, fmt.Errorf("failed to create recurring expense: %w", err)
	}

	return &CreateRecurringExpenseOutput{
		RecurringExpense: recurring,
		State:            recurring.StateAt(uc.clock.Now().UTC()),
	}, nil
}

func (uc *CreateRecurringExpenseUseCase) validateInput(input CreateRecurringExpenseInput) error {
	if strings.TrimSpace(input.Description) == "" || input.CategoryID == uuid.Nil {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeMissingRecFields,
			"description and category_id are required",
			domainerror.ErrMissingRecurringFields,
		)
	}

	if input.Amount.IsNegative() {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeRecNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	return validateDayOfMonth(input.DayOfMonth)
}

// validateDayOfMonth enforces the 1-28 generation day range.
func validateDayOfMonth(day int) error {
	if day < entity.MinDayOfMonth || day > entity.MaxDayOfMonth {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidDayOfMonth,
			fmt.Sprintf("day_of_month must be between %d and %d", entity.MinDayOfMonth, entity.MaxDayOfMonth),
			domainerror.ErrInvalidDayOfMonth,
		)
	}
	return nil
}

// validateCategoryVisible checks that the category exists and is usable by the
// household (a shared default or one of the household's own).
func validateCategoryVisible(
	ctx context.Context,
	categoryRepo adapter.CategoryRepository,
	categoryID uuid.UUID,
	householdID uuid.UUID,
) error {
	category, err := categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeRecCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForRecurring,
		)
	}

	if !category.IsShared() && *category.HouseholdID != householdID {
		return domainerror.NewRecurringError(
			domainerror.ErrCodeRecCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForRecurring,
		)
	}

	return nil
}

// nextOccurrence is a convenience for controllers that surface when a
// template will fire next.
func nextOccurrence(template *entity.RecurringExpense, now time.Time) time.Time {
	due := template.DueDate(now)
	if template.GeneratedFor(now) || due.Before(entity.DayStart(now)) {
		next := entity.MonthStart(now).AddDate(0, 1, 0)
		return template.DueDate(next)
	}
	return due
}
