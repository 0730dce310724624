// Package error defines domain-specific errors for the finance tracker.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account does not exist or does not
	// belong to the claimed owner.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountHasTransactions is returned when deleting an account that still
	// has transactions referencing it.
	ErrAccountHasTransactions = errors.New("account has transactions")

	// ErrAccountNameEmpty is returned when the account name is empty.
	ErrAccountNameEmpty = errors.New("account name cannot be empty")

	// ErrAccountNameTooLong is returned when the account name exceeds the maximum length.
	ErrAccountNameTooLong = errors.New("account name too long")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	ErrCodeAccountNameEmpty       AccountErrorCode = "ACC-010001"
	ErrCodeAccountNameTooLong     AccountErrorCode = "ACC-010002"
	ErrCodeAccountNotFound        AccountErrorCode = "ACC-010003"
	ErrCodeAccountHasTransactions AccountErrorCode = "ACC-010004"
	ErrCodeMissingAccountFields   AccountErrorCode = "ACC-010005"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
