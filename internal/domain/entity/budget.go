// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a monthly spending budget for one category in one
// household. At most one budget exists per (household, category, month).
type Budget struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal
	Month       time.Time // Normalized to the first day of the month, UTC
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBudget creates a new Budget entity. The month is normalized to its
// first day.
func NewBudget(householdID, categoryID uuid.UUID, amount decimal.Decimal, month time.Time) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:          uuid.New(),
		HouseholdID: householdID,
		CategoryID:  categoryID,
		Amount:      amount,
		Month:       MonthStart(month),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
