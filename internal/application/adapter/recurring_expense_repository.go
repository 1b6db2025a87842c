// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// RecurringExpenseRepository defines the interface for recurring expense persistence operations.
type RecurringExpenseRepository interface {
	// Create creates a new recurring expense in the database.
	Create(ctx context.Context, recurring *entity.RecurringExpense) error

	// FindByID retrieves a recurring expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringExpense, error)

	// FindByHousehold retrieves all recurring expenses for a household.
	FindByHousehold(ctx context.Context, householdID uuid.UUID) ([]*entity.RecurringExpenseWithCategory, error)

	// FindDueForGeneration retrieves active recurring expenses across all
	// households that have not yet been generated for the month containing
	// the given time.
	FindDueForGeneration(ctx context.Context, month time.Time) ([]*entity.RecurringExpense, error)

	// CreateGeneratedExpense inserts the generated expense and advances the
	// recurring expense's last generated month watermark in a single
	// transaction. Either both writes happen or neither does.
	CreateGeneratedExpense(ctx context.Context, expense *entity.Expense, recurringID uuid.UUID, month time.Time) error

	// RecordGenerationRun persists an audit record of a generation batch.
	RecordGenerationRun(ctx context.Context, run *entity.GenerationRun) error

	// Update updates an existing recurring expense in the database.
	Update(ctx context.Context, recurring *entity.RecurringExpense) error

	// Delete soft deletes a recurring expense by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
