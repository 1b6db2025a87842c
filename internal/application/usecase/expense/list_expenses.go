// Package expense contains expense management use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
)

// DefaultListLimit bounds expense listings when no limit is requested.
const DefaultListLimit = 50

// MaxListLimit is the hard ceiling on expense listing page size.
const MaxListLimit = 200

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	HouseholdID uuid.UUID
	CategoryID  *uuid.UUID
	UserID      *uuid.UUID
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.ExpenseWithCategory
}

// ListExpensesUseCase handles listing a household's expenses.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute lists expenses for a household, newest first.
func (uc *ListExpensesUseCase) Execute(
	ctx context.Context,
	input ListExpensesInput,
) (*ListExpensesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	filter := adapter.ExpenseFilter{
		CategoryID: input.CategoryID,
		UserID:     input.UserID,
		From:       input.From,
		To:         input.To,
		Limit:      limit,
		Offset:     input.Offset,
	}

	expenses, err := uc.expenseRepo.FindByHousehold(ctx, input.HouseholdID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
