// Package error defines domain-specific errors for the Household Tracker application.
package error

import "errors"

// Recurring expense domain errors.
var (
	// ErrRecurringExpenseNotFound is returned when a template is not found in the system.
	ErrRecurringExpenseNotFound = errors.New("recurring expense not found")

	// ErrInvalidDayOfMonth is returned when day_of_month is outside 1-28.
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 28")

	// ErrCategoryNotFoundForRecurring is returned when the referenced category does not exist.
	ErrCategoryNotFoundForRecurring = errors.New("category not found for recurring expense")

	// ErrRecurringNotInHousehold is returned when a template belongs to a different household.
	ErrRecurringNotInHousehold = errors.New("recurring expense does not belong to household")

	// ErrMissingRecurringFields is returned when required template fields are absent.
	ErrMissingRecurringFields = errors.New("missing required recurring expense fields")
)

// RecurringErrorCode defines error codes for recurring expense errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDayOfMonth    RecurringErrorCode = "REC-010001"
	ErrCodeRecNegativeAmount    RecurringErrorCode = "REC-010002"
	ErrCodeRecCategoryNotFound  RecurringErrorCode = "REC-010003"
	ErrCodeMissingRecFields     RecurringErrorCode = "REC-010004"

	// Not found errors (02XXXX)
	ErrCodeRecurringNotFound RecurringErrorCode = "REC-020001"

	// Authorization errors (03XXXX)
	ErrCodeRecurringNotInHousehold RecurringErrorCode = "REC-030001"
)

// RecurringError represents a recurring expense error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
