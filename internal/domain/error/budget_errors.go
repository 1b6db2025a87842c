// Package error defines domain-specific errors for the Household Tracker application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrNegativeBudgetAmount is returned when a budget amount is negative.
	ErrNegativeBudgetAmount = errors.New("budget amount must not be negative")

	// ErrBudgetConflict is returned when a concurrent write violates the
	// (household, category, month) uniqueness constraint.
	ErrBudgetConflict = errors.New("budget already exists for this category and month")

	// ErrCategoryNotFoundForBudget is returned when the referenced category does not exist.
	ErrCategoryNotFoundForBudget = errors.New("category not found for budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BDG-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeBudgetAmount BudgetErrorCode = "BDG-010001"
	ErrCodeBdgCategoryNotFound  BudgetErrorCode = "BDG-010002"

	// Not found errors (02XXXX)
	ErrCodeBudgetNotFound BudgetErrorCode = "BDG-020001"

	// Conflict errors (03XXXX)
	ErrCodeBudgetConflict BudgetErrorCode = "BDG-030001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
