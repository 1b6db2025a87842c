// Package expense contains expense management use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
	domainerror "github.com/household-tracker/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for updating an expense.
// Nil pointer fields are left unchanged.
type UpdateExpenseInput struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	CategoryID  *uuid.UUID
	Amount      *decimal.Decimal
	Description *string
	Notes       *string
	Date        *time.Time
	ReceiptURL  *string
}

// UpdateExpenseOutput represents the output of updating an expense.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles updating expenses.
type UpdateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.SummaryCache
	logger       *slog.Logger
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.SummaryCache,
	logger *slog.Logger,
) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Execute updates an existing expense.
func (uc *UpdateExpenseUseCase) Execute(
	ctx context.Context,
	input UpdateExpenseInput,
) (*UpdateExpenseOutput, error) {
	expense, err := findHouseholdExpense(ctx, uc.expenseRepo, input.ID, input.HouseholdID)
	if err != nil {
		return nil, err
	}

	originalMonth := entity.MonthStart(expense.Date)

	if input.CategoryID != nil {
		if err := validateCategoryUsable(ctx, uc.categoryRepo, *input.CategoryID, input.HouseholdID); err != nil {
			return nil, err
		}
		expense.CategoryID = *input.CategoryID
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeNegativeAmount,
				"amount must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		expense.Amount = *input.Amount
	}

	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeMissingExpenseFields,
				"description must not be empty",
				domainerror.ErrMissingExpenseFields,
			)
		}
		if len(description) > MaxDescriptionLength {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeDescriptionTooLong,
				fmt.Sprintf("description must be at most %d characters", MaxDescriptionLength),
				domainerror.ErrDescriptionTooLong,
			)
		}
		expense.Description = description
	}

	if input.Notes != nil {
		notes := strings.TrimSpace(*input.Notes)
		if len(notes) > MaxNotesLength {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeNotesTooLong,
				fmt.Sprintf("notes must be at most %d characters", MaxNotesLength),
				domainerror.ErrNotesTooLong,
			)
		}
		expense.Notes = notes
	}

	if input.Date != nil {
		expense.Date = entity.DayStart(*input.Date)
	}

	if input.ReceiptURL != nil {
		expense.ReceiptURL = strings.TrimSpace(*input.ReceiptURL)
	}

	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	invalidateSummary(ctx, uc.cache, uc.logger, expense.HouseholdID, expense.Date)
	if newMonth := entity.MonthStart(expense.Date); !newMonth.Equal(originalMonth) {
		// Moving an expense across months dirties both summaries.
		invalidateSummary(ctx, uc.cache, uc.logger, expense.HouseholdID, originalMonth)
	}

	return &UpdateExpenseOutput{Expense: expense}, nil
}

// findHouseholdExpense loads an expense and checks household ownership.
func findHouseholdExpense(
	ctx context.Context,
	expenseRepo adapter.ExpenseRepository,
	id uuid.UUID,
	householdID uuid.UUID,
) (*entity.Expense, error) {
	expense, err := expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	if expense == nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}
	if expense.HouseholdID != householdID {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotInHousehold,
			"expense does not belong to household",
			domainerror.ErrExpenseNotInHousehold,
		)
	}
	return expense, nil
}
