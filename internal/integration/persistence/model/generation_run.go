// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// GenerationRunModel represents the generation_runs audit table in the database.
type GenerationRunModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Month               time.Time      `gorm:"type:date;not null;index"`
	GeneratedExpenseIDs pq.StringArray `gorm:"type:text[]"`
	FailureCount        int            `gorm:"default:0"`
	RanAt               time.Time      `gorm:"not null"`
}

// TableName returns the table name for the GenerationRunModel.
func (GenerationRunModel) TableName() string {
	return "generation_runs"
}

// ToEntity converts a GenerationRunModel to a domain GenerationRun entity.
func (m *GenerationRunModel) ToEntity() *entity.GenerationRun {
	ids := make([]uuid.UUID, 0, len(m.GeneratedExpenseIDs))
	for _, raw := range m.GeneratedExpenseIDs {
		if id, err := uuid.Parse(raw); err == nil {
			ids = append(ids, id)
		}
	}

	return &entity.GenerationRun{
		ID:                  m.ID,
		Month:               m.Month,
		GeneratedExpenseIDs: ids,
		FailureCount:        m.FailureCount,
		RanAt:               m.RanAt,
	}
}

// GenerationRunFromEntity creates a GenerationRunModel from a domain GenerationRun entity.
func GenerationRunFromEntity(run *entity.GenerationRun) *GenerationRunModel {
	ids := make(pq.StringArray, len(run.GeneratedExpenseIDs))
	for i, id := range run.GeneratedExpenseIDs {
		ids[i] = id.String()
	}

	return &GenerationRunModel{
		ID:                  run.ID,
		Month:               run.Month,
		GeneratedExpenseIDs: ids,
		FailureCount:        run.FailureCount,
		RanAt:               run.RanAt,
	}
}
