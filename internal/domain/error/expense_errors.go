// Package error defines domain-specific errors for the Household Tracker application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrNegativeAmount is returned when an expense amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrNotesTooLong is returned when the notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")

	// ErrMissingExpenseFields is returned when required expense fields are absent.
	ErrMissingExpenseFields = errors.New("missing required expense fields")

	// ErrCategoryNotFoundForExpense is returned when the referenced category does not exist.
	ErrCategoryNotFoundForExpense = errors.New("category not found for expense")

	// ErrCategoryNotShared is returned when the category is private to another household.
	ErrCategoryNotShared = errors.New("category not visible to household")

	// ErrExpenseNotInHousehold is returned when an expense belongs to a different household.
	ErrExpenseNotInHousehold = errors.New("expense does not belong to household")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeAmount        ExpenseErrorCode = "EXP-010001"
	ErrCodeDescriptionTooLong    ExpenseErrorCode = "EXP-010002"
	ErrCodeNotesTooLong          ExpenseErrorCode = "EXP-010003"
	ErrCodeMissingExpenseFields  ExpenseErrorCode = "EXP-010004"
	ErrCodeExpCategoryNotFound   ExpenseErrorCode = "EXP-010005"
	ErrCodeExpCategoryNotShared  ExpenseErrorCode = "EXP-010006"

	// Not found errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"

	// Authorization errors (03XXXX)
	ErrCodeExpenseNotInHousehold ExpenseErrorCode = "EXP-030001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
