// Package error defines domain-specific errors for the LedgerTrack application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found.
	// An ownership mismatch produces the same error: missing rows and other
	// users' rows are indistinguishable to the caller.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrEmptyDescription is returned when the description is blank after trimming.
	ErrEmptyDescription = errors.New("description cannot be empty")

	// ErrZeroAmount is returned when the transaction amount is zero.
	ErrZeroAmount = errors.New("amount cannot be zero")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionDate is returned when the transaction date is invalid.
	ErrInvalidTransactionDate = errors.New("invalid transaction date")

	// ErrCategoryNotUsable is returned when the referenced category does not
	// exist or does not belong to the requesting user.
	ErrCategoryNotUsable = errors.New("category not found")

	// ErrDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyDescription         TransactionErrorCode = "TXN-010001"
	ErrCodeZeroAmount               TransactionErrorCode = "TXN-010002"
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010003"
	ErrCodeInvalidTransactionDate   TransactionErrorCode = "TXN-010004"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010006"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
	ErrCodeTxnCategoryNotFound TransactionErrorCode = "TXN-020002"
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
