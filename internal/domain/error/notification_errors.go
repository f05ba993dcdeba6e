// Package error defines domain-specific errors for the LanaApp backend.
package error

import "errors"

// Notification domain errors.
var (
	// ErrNotificationNotFound is returned when a notification is not found for the requesting user.
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInvalidNotificationChannel is returned when the channel is not email or sms.
	ErrInvalidNotificationChannel = errors.New("invalid notification channel")

	// ErrNotificationUserNotFound is returned when the referenced user does not exist.
	ErrNotificationUserNotFound = errors.New("user not found")
)

// NotificationErrorCode defines error codes for notification errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type NotificationErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidNotificationChannel NotificationErrorCode = "NTF-010001"
	ErrCodeMissingNotificationFields  NotificationErrorCode = "NTF-010002"

	// Lookup errors (02XXXX)
	ErrCodeNotificationNotFound     NotificationErrorCode = "NTF-020001"
	ErrCodeNotificationUserNotFound NotificationErrorCode = "NTF-020002"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
