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

// Field length limits for expenses.
const (
	MaxDescriptionLength = 200
	MaxNotesLength       = 500
)

// CreateExpenseInput represents the input for creating an expense.
type CreateExpenseInput struct {
	HouseholdID uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Description string
	Notes       string
	Date        time.Time
	ReceiptURL  string
}

// CreateExpenseOutput represents the output of creating an expense.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles creating expenses.
type CreateExpenseUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	categoryRepo adapter.CategoryRepository
	cache        adapter.SummaryCache
	logger       *slog.Logger
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(
	expenseRepo adapter.ExpenseRepository,
	categoryRepo adapter.CategoryRepository,
	cache adapter.SummaryCache,
	logger *slog.Logger,
) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Execute creates a new expense for the household.
func (uc *CreateExpenseUseCase) Execute(
	ctx context.Context,
	input CreateExpenseInput,
) (*CreateExpenseOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	if err := validateCategoryUsable(ctx, uc.categoryRepo, input.CategoryID, input.HouseholdID); err != nil {
		return nil, err
	}

	date := entity.DayStart(input.Date)
	if date.IsZero() {
		date = entity.DayStart(time.Now().UTC())
	}

	expense := entity.NewExpense(
		input.HouseholdID,
		input.UserID,
		input.CategoryID,
		input.Amount,
		strings.TrimSpace(input.Description),
		strings.TrimSpace(input.Notes),
		date,
		strings.TrimSpace(input.ReceiptURL),
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	invalidateSummary(ctx, uc.cache, uc.logger, expense.HouseholdID, expense.Date)

	return &CreateExpenseOutput{Expense: expense}, nil
}

func (uc *CreateExpenseUseCase) validateInput(input CreateExpenseInput) error {
	if strings.TrimSpace(input.Description) == "" || input.CategoryID == uuid.Nil {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"description and category_id are required",
			domainerror.ErrMissingExpenseFields,
		)
	}

	if input.Amount.IsNegative() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNegativeAmount,
			"amount must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}

	if len(input.Description) > MaxDescriptionLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must be at most %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if len(input.Notes) > MaxNotesLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must be at most %d characters", MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}

	return nil
}

// validateCategoryUsable checks that the category exists and is visible to
// the household.
func validateCategoryUsable(
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
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpCategoryNotFound,
			"category not found",
			domainerror.ErrCategoryNotFoundForExpense,
		)
	}
	if !category.IsShared() && *category.HouseholdID != householdID {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpCategoryNotShared,
			"category not visible to household",
			domainerror.ErrCategoryNotShared,
		)
	}
	return nil
}

// invalidateSummary drops the cached summary for the month an expense
// touches. Cache trouble is logged, never surfaced.
func invalidateSummary(
	ctx context.Context,
	cache adapter.SummaryCache,
	logger *slog.Logger,
	householdID uuid.UUID,
	date time.Time,
) {
	if err := cache.Invalidate(ctx, householdID, entity.MonthStart(date)); err != nil {
		logger.Warn("summary cache invalidation failed",
			"household_id", householdID,
			"error", err,
		)
	}
}
