// Package error defines domain-specific errors for the LanaApp backend.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found for the requesting user.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when a budget already exists for the
	// same (user, category, year, month).
	ErrBudgetAlreadyExists = errors.New("budget already exists for this category and month")

	// ErrInvalidBudgetAmount is returned when the budget amount is zero or negative.
	ErrInvalidBudgetAmount = errors.New("budget amount must be greater than zero")

	// ErrInvalidBudgetMonth is returned when the month is outside 1-12.
	ErrInvalidBudgetMonth = errors.New("month must be between 1 and 12")

	// ErrBudgetCategoryNotFound is returned when the referenced category does
	// not exist or is not visible to the user.
	ErrBudgetCategoryNotFound = errors.New("category not found")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount    BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetMonth     BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetYear      BudgetErrorCode = "BGT-010003"
	ErrCodeMissingBudgetFields    BudgetErrorCode = "BGT-010004"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound         BudgetErrorCode = "BGT-020001"
	ErrCodeBudgetCategoryNotFound BudgetErrorCode = "BGT-020002"

	// Conflict errors (03XXXX)
	ErrCodeBudgetAlreadyExists    BudgetErrorCode = "BGT-030001"
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
