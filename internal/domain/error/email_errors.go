// Package error defines domain-specific errors for the LanaApp backend.
package error

import "errors"

// Email delivery errors.
var (
	// ErrEmailSendFailed is returned when an email could not be sent.
	ErrEmailSendFailed = errors.New("failed to send email")
)

// EmailErrorCode defines error codes for email delivery errors.
// Format: EML-XXYYYY where XX is category and YYYY is specific error.
type EmailErrorCode string

const (
	// Delivery errors (03XXXX)
	ErrCodePermanentEmailFailure EmailErrorCode = "EML-030001"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EML-030002"
)

// EmailError represents an email delivery error with code and message. The
// code tells the delivery worker whether a retry is worthwhile.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
