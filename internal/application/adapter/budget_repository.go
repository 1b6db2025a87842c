// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Upsert creates a budget, or updates the amount when a budget already
	// exists for the same household, category and month.
	Upsert(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByHouseholdAndMonth retrieves all budgets for a household in the
	// calendar month containing the given time.
	FindByHouseholdAndMonth(ctx context.Context, householdID uuid.UUID, month time.Time) ([]*entity.Budget, error)

	// Delete soft deletes a budget by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
