// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// UserStats holds the aggregated statistics for a single user.
type UserStats struct {
	TotalBalance      decimal.Decimal
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
	AccountsCount     int64
	TransactionsCount int64
}

// StatsRepository computes aggregated statistics over a user's accounts and
// transactions. Results are recomputed on every call; there is no caching.
type StatsRepository interface {
	GetUserStats(ctx context.Context, userID int64) (*UserStats, error)
}
