// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
	"github.com/household-tracker/backend/internal/integration/persistence/model"
)

// recurringExpenseRepository implements the adapter.RecurringExpenseRepository interface.
type recurringExpenseRepository struct {
	db *gorm.DB
}

// NewRecurringExpenseRepository creates a new recurring expense repository instance.
func NewRecurringExpenseRepository(db *gorm.DB) adapter.RecurringExpenseRepository {
	return &recurringExpenseRepository{
		db: db,
	}
}

// Create creates a new recurring expense in the database.
func (r *recurringExpenseRepository) Create(ctx context.Context, recurring *entity.RecurringExpense) error {
	recurringModel := model.RecurringExpenseFromEntity(recurring)
	result := r.db.WithContext(ctx).Create(recurringModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a recurring expense by its ID.
// Returns (nil, nil) when no recurring expense matches.
func (r *recurringExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RecurringExpense, error) {
	var recurringModel model.RecurringExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recurringModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return recurringModel.ToEntity(), nil
}

// FindByHousehold retrieves all recurring expenses for a household.
func (r *recurringExpenseRepository) FindByHousehold(
	ctx context.Context,
	householdID uuid.UUID,
) ([]*entity.RecurringExpenseWithCategory, error) {
	var recurringModels []model.RecurringExpenseModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Where("household_id = ?", householdID).
		Order("day_of_month ASC, created_at ASC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}

	templates := make([]*entity.RecurringExpenseWithCategory, len(recurringModels))
	for i, rm := range recurringModels {
		templates[i] = rm.ToEntityWithCategory()
	}
	return templates, nil
}

// FindDueForGeneration retrieves active recurring expenses across all
// households whose watermark does not cover the month containing the given time.
func (r *recurringExpenseRepository) FindDueForGeneration(
	ctx context.Context,
	month time.Time,
) ([]*entity.RecurringExpense, error) {
	start := entity.MonthStart(month)

	var recurringModels []model.RecurringExpenseModel
	result := r.db.WithContext(ctx).
		Where("is_active = ? AND (last_generated_month IS NULL OR last_generated_month < ?)", true, start).
		Order("created_at ASC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}

	templates := make([]*entity.RecurringExpense, len(recurringModels))
	for i, rm := range recurringModels {
		templates[i] = rm.ToEntity()
	}
	return templates, nil
}

// CreateGeneratedExpense inserts the generated expense and advances the
// template's watermark in a single transaction. The watermark update re-checks
// the previous watermark so a concurrent run cannot double-generate.
func (r *recurringExpenseRepository) CreateGeneratedExpense(
	ctx context.Context,
	expense *entity.Expense,
	recurringID uuid.UUID,
	month time.Time,
) error {
	start := entity.MonthStart(month)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		claim := tx.Model(&model.RecurringExpenseModel{}).
			Where("id = ? AND (last_generated_month IS NULL OR last_generated_month < ?)", recurringID, start).
			Updates(map[string]interface{}{
				"last_generated_month": start,
				"updated_at":           time.Now().UTC(),
			})
		if claim.Error != nil {
			return claim.Error
		}
		if claim.RowsAffected == 0 {
			// Another run already generated for this month.
			return gorm.ErrRecordNotFound
		}

		expenseModel := model.ExpenseFromEntity(expense)
		if err := tx.Create(expenseModel).Error; err != nil {
			return err
		}

		return nil
	})
}

// RecordGenerationRun persists an audit record of a generation batch.
func (r *recurringExpenseRepository) RecordGenerationRun(ctx context.Context, run *entity.GenerationRun) error {
	runModel := model.GenerationRunFromEntity(run)
	result := r.db.WithContext(ctx).Create(runModel)
	return result.Error
}

// Update updates an existing recurring expense in the database.
// The generation watermark is deliberately excluded; only the generator
// advances it.
func (r *recurringExpenseRepository) Update(ctx context.Context, recurring *entity.RecurringExpense) error {
	recurringModel := model.RecurringExpenseFromEntity(recurring)
	result := r.db.WithContext(ctx).
		Model(&model.RecurringExpenseModel{}).
		Where("id = ?", recurring.ID).
		Select("category_id", "amount", "description", "notes", "day_of_month", "is_active", "updated_at").
		Updates(recurringModel)
	return result.Error
}

// Delete soft deletes a recurring expense by its ID.
func (r *recurringExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RecurringExpenseModel{})
	return result.Error
}
