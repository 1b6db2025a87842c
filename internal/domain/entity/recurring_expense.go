// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MinDayOfMonth is the lowest allowed generation day for a template.
	MinDayOfMonth = 1
	// MaxDayOfMonth is the highest allowed generation day for a template.
	// Capped at 28 so the configured day exists in every month.
	MaxDayOfMonth = 28
)

// RecurringMarker is appended to the notes of expenses created by the
// monthly generator.
const RecurringMarker = "(Recurring)"

// GenerationState describes where a template stands within the current
// calendar month.
type GenerationState string

const (
	// GenerationStatePending means the template has not been generated for
	// the current month and its day-of-month has not arrived yet.
	GenerationStatePending GenerationState = "pending"
	// GenerationStateEligible means the template is pending and its
	// day-of-month has been reached, so the next generator run creates an
	// expense from it.
	GenerationStateEligible GenerationState = "eligible"
	// GenerationStateGenerated means an expense has already been created
	// from the template this month.
	GenerationStateGenerated GenerationState = "generated"
)

// RecurringExpense is a template that spawns one concrete expense per month
// on its configured day. LastGeneratedMonth is the watermark guaranteeing
// at-most-once generation per calendar month; it is mutated only by the
// generator.
type RecurringExpense struct {
	ID                 uuid.UUID
	HouseholdID        uuid.UUID
	UserID             uuid.UUID
	CategoryID         uuid.UUID
	Amount             decimal.Decimal
	Description        string
	Notes              string
	DayOfMonth         int
	IsActive           bool
	LastGeneratedMonth *time.Time // First-of-month date, nil if never generated
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewRecurringExpense creates a new RecurringExpense entity.
func NewRecurringExpense(
	householdID uuid.UUID,
	userID uuid.UUID,
	categoryID uuid.UUID,
	amount decimal.Decimal,
	description string,
	notes string,
	dayOfMonth int,
) *RecurringExpense {
	now := time.Now().UTC()

	return &RecurringExpense{
		ID:          uuid.New(),
		HouseholdID: householdID,
		UserID:      userID,
		CategoryID:  categoryID,
		Amount:      amount,
		Description: description,
		Notes:       notes,
		DayOfMonth:  dayOfMonth,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// GeneratedFor reports whether the watermark already covers the given month.
func (r *RecurringExpense) GeneratedFor(month time.Time) bool {
	if r.LastGeneratedMonth == nil {
		return false
	}
	return !r.LastGeneratedMonth.Before(MonthStart(month))
}

// DueDate returns the date the template's expense falls on within now's
// month. A day-of-month beyond the month's length clamps to the last day of
// the month; it never rolls into the next month.
func (r *RecurringExpense) DueDate(now time.Time) time.Time {
	day := r.DayOfMonth
	if last := DaysInMonth(now); day > last {
		day = last
	}
	return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.UTC)
}

// StateAt returns the template's generation state for now's calendar month.
func (r *RecurringExpense) StateAt(now time.Time) GenerationState {
	if r.GeneratedFor(now) {
		return GenerationStateGenerated
	}
	if !r.DueDate(now).After(DayStart(now)) {
		return GenerationStateEligible
	}
	return GenerationStatePending
}

// RecurringExpenseWithCategory represents a template with its category.
type RecurringExpenseWithCategory struct {
	RecurringExpense *RecurringExpense
	Category         *Category
}
