// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// ExpenseFilter narrows expense listings. Zero values mean "no filter".
type ExpenseFilter struct {
	CategoryID *uuid.UUID
	UserID     *uuid.UUID
	From       *time.Time
	To         *time.Time
	Limit      int
	Offset     int
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByHousehold retrieves expenses for a household matching the filter,
	// ordered by date descending.
	FindByHousehold(ctx context.Context, householdID uuid.UUID, filter ExpenseFilter) ([]*entity.ExpenseWithCategory, error)

	// FindByHouseholdAndMonth retrieves all expenses for a household whose
	// date falls within the calendar month containing the given time.
	FindByHouseholdAndMonth(ctx context.Context, householdID uuid.UUID, month time.Time) ([]*entity.Expense, error)

	// Update updates an existing expense in the database.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete soft deletes an expense by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
