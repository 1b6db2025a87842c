// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single expense logged against a household and category.
type Expense struct {
	ID          uuid.UUID
	HouseholdID uuid.UUID
	UserID      uuid.UUID
	CategoryID  uuid.UUID
	Amount      decimal.Decimal // Non-negative
	Description string
	Notes       string
	Date        time.Time // Day granularity, UTC
	ReceiptURL  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	householdID uuid.UUID,
	userID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	description string,
	notes string,
	date time.Time,
	receiptURL string,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:          uuid.New(),
		HouseholdID: householdID,
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Notes:       notes,
		Date:        date,
		ReceiptURL:  receiptURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ExpenseWithCategory represents an expense with its associated category.
type ExpenseWithCategory struct {
	Expense  *Expense
	Category *Category
}
