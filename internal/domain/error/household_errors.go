// Package error defines domain-specific errors for the Household Tracker application.
package error

import "errors"

// Household domain errors.
var (
	// ErrHouseholdNotFound is returned when a household is not found in the system.
	ErrHouseholdNotFound = errors.New("household not found")

	// ErrHouseholdNameRequired is returned when a household name is blank.
	ErrHouseholdNameRequired = errors.New("household name is required")

	// ErrInvalidInviteCode is returned when no household matches an invite code.
	ErrInvalidInviteCode = errors.New("invalid invite code")

	// ErrAlreadyInHousehold is returned when a user who already belongs to a household
	// tries to create or join one.
	ErrAlreadyInHousehold = errors.New("user already belongs to a household")

	// ErrNotHouseholdMember is returned when a user acts on a household they do not belong to.
	ErrNotHouseholdMember = errors.New("not a member of this household")

	// ErrOwnerCannotLeave is returned when the household owner tries to leave
	// while other members remain.
	ErrOwnerCannotLeave = errors.New("owner cannot leave household with remaining members")
)

// HouseholdErrorCode defines error codes for household errors.
// Format: HH-XXYYYY where XX is category and YYYY is specific error.
type HouseholdErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeHouseholdNameRequired HouseholdErrorCode = "HH-010001"
	ErrCodeInvalidInviteCode     HouseholdErrorCode = "HH-010002"

	// Not found errors (02XXXX)
	ErrCodeHouseholdNotFound HouseholdErrorCode = "HH-020001"

	// Authorization errors (03XXXX)
	ErrCodeNotHouseholdMember HouseholdErrorCode = "HH-030001"
	ErrCodeOwnerCannotLeave   HouseholdErrorCode = "HH-030002"

	// Conflict errors (04XXXX)
	ErrCodeAlreadyInHousehold HouseholdErrorCode = "HH-040001"
)

// HouseholdError represents a household error with code and message.
type HouseholdError struct {
	Code    HouseholdErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HouseholdError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *HouseholdError) Unwrap() error {
	return e.Err
}

// NewHouseholdError creates a new HouseholdError with the given code and message.
func NewHouseholdError(code HouseholdErrorCode, message string, err error) *HouseholdError {
	return &HouseholdError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
