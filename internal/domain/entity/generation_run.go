// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GenerationRun records one execution of the monthly recurring-expense
// generator for auditing.
type GenerationRun struct {
	ID                  uuid.UUID
	Month               time.Time // First-of-month date the run targeted
	GeneratedExpenseIDs []uuid.UUID
	FailureCount        int
	RanAt               time.Time
}

// NewGenerationRun creates a GenerationRun entity for the given month.
func NewGenerationRun(month time.Time, generated []uuid.UUID, failureCount int) *GenerationRun {
	return &GenerationRun{
		ID:                  uuid.New(),
		Month:               MonthStart(month),
		GeneratedExpenseIDs: generated,
		FailureCount:        failureCount,
		RanAt:               time.Now().UTC(),
	}
}
