// Package error defines domain-specific errors for the LanaApp backend.
package error

import "errors"

// Fixed payment domain errors.
var (
	// ErrFixedPaymentNotFound is returned when a fixed payment is not found for the requesting user.
	ErrFixedPaymentNotFound = errors.New("fixed payment not found")

	// ErrFixedPaymentDuplicate is returned when a payment with the same
	// description and amount already exists for the user.
	ErrFixedPaymentDuplicate = errors.New("a fixed payment with this description and amount already exists")

	// ErrInvalidFixedPaymentAmount is returned when the amount is zero or negative.
	ErrInvalidFixedPaymentAmount = errors.New("fixed payment amount must be greater than zero")

	// ErrFixedPaymentUserNotFound is returned when the referenced user does not exist.
	ErrFixedPaymentUserNotFound = errors.New("user not found")
)

// FixedPaymentErrorCode defines error codes for fixed payment errors.
// Format: FXP-XXYYYY where XX is category and YYYY is specific error.
type FixedPaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFixedPaymentAmount FixedPaymentErrorCode = "FXP-010001"
	ErrCodeMissingFixedPaymentFields FixedPaymentErrorCode = "FXP-010002"

	// Lookup errors (02XXXX)
	ErrCodeFixedPaymentNotFound     FixedPaymentErrorCode = "FXP-020001"
	ErrCodeFixedPaymentUserNotFound FixedPaymentErrorCode = "FXP-020002"

	// Conflict errors (03XXXX)
	ErrCodeFixedPaymentDuplicate FixedPaymentErrorCode = "FXP-030001"
)

// FixedPaymentError represents a fixed payment error with code and message.
type FixedPaymentError struct {
	Code    FixedPaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FixedPaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FixedPaymentError) Unwrap() error {
	return e.Err
}

// NewFixedPaymentError creates a new FixedPaymentError with the given code and message.
func NewFixedPaymentError(code FixedPaymentErrorCode, message string, err error) *FixedPaymentError {
	return &FixedPaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
