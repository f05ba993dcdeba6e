// Package error defines domain-specific errors for the LanaApp backend.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found for the requesting user.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionKind is returned when the transaction kind is not one of income, expense, savings.
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrInvalidTransactionAmount is returned when the transaction amount is zero or negative.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be greater than zero")

	// ErrCategoryKindMismatch is returned when the supplied kind conflicts with
	// the linked category's kind.
	ErrCategoryKindMismatch = errors.New("category kind does not match transaction kind")

	// ErrKindNotResolvable is returned when neither a kind nor a category to
	// derive it from was supplied.
	ErrKindNotResolvable = errors.New("transaction kind could not be resolved")

	// ErrCategoryNotFoundForTransaction is returned when the referenced category
	// does not exist or is not visible to the user.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrFixedPaymentNotFoundForTransaction is returned when the recurrence
	// link references an unknown fixed payment.
	ErrFixedPaymentNotFoundForTransaction = errors.New("fixed payment not found")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionKind   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010003"
	ErrCodeCategoryKindMismatch     TransactionErrorCode = "TXN-010004"
	ErrCodeKindNotResolvable        TransactionErrorCode = "TXN-010005"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010006"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010007"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
	ErrCodeTxnCategoryNotFound TransactionErrorCode = "TXN-020002"
	ErrCodeTxnFixedPaymentNotFound TransactionErrorCode = "TXN-020003"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
