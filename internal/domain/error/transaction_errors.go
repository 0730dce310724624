// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is not
	// income or expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInvalidTransactionAmount is returned when the amount is negative or has
	// more than two fraction digits.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrTransactionCategoryTooLong is returned when the category label exceeds
	// the maximum length.
	ErrTransactionCategoryTooLong = errors.New("category too long")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	ErrCodeInvalidTransactionType    TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount  TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionNotFound       TransactionErrorCode = "TXN-010003"
	ErrCodeTransactionCategoryLong   TransactionErrorCode = "TXN-010004"
	ErrCodeMissingTransactionFields  TransactionErrorCode = "TXN-010005"
	ErrCodeTransactionAccountMissing TransactionErrorCode = "TXN-010006"
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
