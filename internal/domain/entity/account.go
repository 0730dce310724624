// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a money account owned by a single user.
//
// Balance tracks the signed sum of the account's transactions (income adds,
// expense subtracts) unless it was manually overwritten through an account
// update, which is an explicit escape hatch.
type Account struct {
	ID        int64
	UserID    int64
	Name      string
	Balance   decimal.Decimal
	CreatedAt time.Time
}

// NewAccount creates a new Account entity.
func NewAccount(userID int64, name string, balance decimal.Decimal) *Account {
	return &Account{
		UserID:    userID,
		Name:      name,
		Balance:   balance,
		CreatedAt: time.Now().UTC(),
	}
}
