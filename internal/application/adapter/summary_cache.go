// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/household-tracker/backend/internal/domain/entity"
)

// SummaryCache caches computed spending summaries per household and month.
// A miss is reported as (nil, nil).
type SummaryCache interface {
	// Get retrieves a cached summary for a household and month, or nil on miss.
	Get(ctx context.Context, householdID uuid.UUID, month time.Time) (*entity.SpendingSummary, error)

	// Set stores a summary for a household and month.
	Set(ctx context.Context, householdID uuid.UUID, month time.Time, summary *entity.SpendingSummary) error

	// Invalidate drops any cached summary for a household and month.
	Invalidate(ctx context.Context, householdID uuid.UUID, month time.Time) error
}
