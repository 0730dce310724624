// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
// It is a closed two-value enumeration; any other tag must be rejected
// before it reaches the ledger logic.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the two known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense entry.
//
// Amount is always non-negative; the balance effect direction is implied by
// Type. Category is a free-text label, deliberately not a reference to the
// Category entity.
type Transaction struct {
	ID          int64
	UserID      int64
	AccountID   int64
	Type        TransactionType
	Amount      decimal.Decimal
	Category    string
	Description string
	CreatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID int64,
	accountID int64,
	transactionType TransactionType,
	amount decimal.Decimal,
	category string,
	description string,
) *Transaction {
	return &Transaction{
		UserID:      userID,
		AccountID:   accountID,
		Type:        transactionType,
		Amount:      amount,
		Category:    category,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
