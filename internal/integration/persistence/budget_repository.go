// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/domain/entity"
	"github.com/household-tracker/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Upsert creates a budget, or updates the amount when one already exists for
// the same household, category and month. A soft-deleted budget still holds
// the unique key, so the conflict path also clears deleted_at to revive it.
func (r *budgetRepository) Upsert(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "household_id"},
				{Name: "category_id"},
				{Name: "month"},
			},
			DoUpdates: append(
				clause.AssignmentColumns([]string{"amount", "updated_at"}),
				clause.Assignments(map[string]interface{}{"deleted_at": nil})...,
			),
		}).
		Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget by its ID.
// Returns (nil, nil) when no budget matches.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByHouseholdAndMonth retrieves all budgets for a household in the
// calendar month containing the given time.
func (r *budgetRepository) FindByHouseholdAndMonth(
	ctx context.Context,
	householdID uuid.UUID,
	month time.Time,
) ([]*entity.Budget, error) {
	start := entity.MonthStart(month)

	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("household_id = ? AND month = ?", householdID, start).
		Order("created_at ASC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i, bm := range budgetModels {
		budgets[i] = bm.ToEntity()
	}
	return budgets, nil
}

// Delete soft deletes a budget by its ID.
func (r *budgetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BudgetModel{})
	return result.Error
}
