// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// RecurringExpenseModel represents the recurring_expenses table in the database.
type RecurringExpenseModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	HouseholdID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID             uuid.UUID       `gorm:"type:uuid;not null"`
	CategoryID         uuid.UUID       `gorm:"type:uuid;not null"`
	Amount             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description        string          `gorm:"type:varchar(200);not null"`
	Notes              string          `gorm:"type:text"`
	DayOfMonth         int             `gorm:"not null"`
	IsActive           bool            `gorm:"default:true;index"`
	LastGeneratedMonth *time.Time      `gorm:"type:date;index"` // Generation watermark
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
	DeletedAt          gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the RecurringExpenseModel.
func (RecurringExpenseModel) TableName() string {
	return "recurring_expenses"
}

// ToEntity converts a RecurringExpenseModel to a domain RecurringExpense entity.
func (m *RecurringExpenseModel) ToEntity() *entity.RecurringExpense {
	return &entity.RecurringExpense{
		ID:                 m.ID,
		HouseholdID:        m.HouseholdID,
		UserID:             m.UserID,
		CategoryID:         m.CategoryID,
		Amount:             m.Amount,
		Description:        m.Description,
		Notes:              m.Notes,
		DayOfMonth:         m.DayOfMonth,
		IsActive:           m.IsActive,
		LastGeneratedMonth: m.LastGeneratedMonth,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ToEntityWithCategory converts a RecurringExpenseModel with its Category to a
// RecurringExpenseWithCategory entity.
func (m *RecurringExpenseModel) ToEntityWithCategory() *entity.RecurringExpenseWithCategory {
	result := &entity.RecurringExpenseWithCategory{
		RecurringExpense: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// RecurringExpenseFromEntity creates a RecurringExpenseModel from a domain RecurringExpense entity.
func RecurringExpenseFromEntity(recurring *entity.RecurringExpense) *RecurringExpenseModel {
	return &RecurringExpenseModel{
		ID:                 recurring.ID,
		HouseholdID:        recurring.HouseholdID,
		UserID:             recurring.UserID,
		CategoryID:         recurring.CategoryID,
		Amount:             recurring.Amount,
		Description:        recurring.Description,
		Notes:              recurring.Notes,
		DayOfMonth:         recurring.DayOfMonth,
		IsActive:           recurring.IsActive,
		LastGeneratedMonth: recurring.LastGeneratedMonth,
		CreatedAt:          recurring.CreatedAt,
		UpdatedAt:          recurring.UpdatedAt,
	}
}
