package dto

import (
	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
)

// StatsResponse represents the aggregated statistics for a user.
type StatsResponse struct {
	TotalBalance      string `json:"total_balance"`
	TotalIncome       string `json:"total_income"`
	TotalExpense      string `json:"total_expense"`
	AccountsCount     int64  `json:"accounts_count"`
	TransactionsCount int64  `json:"transactions_count"`
}

// ToStatsResponse converts aggregated user stats to a StatsResponse DTO.
func ToStatsResponse(stats *adapter.UserStats) StatsResponse {
	return StatsResponse{
		TotalBalance:      stats.TotalBalance.StringFixed(2),
		TotalIncome:       stats.TotalIncome.StringFixed(2),
		TotalExpense:      stats.TotalExpense.StringFixed(2),
		AccountsCount:     stats.AccountsCount,
		TransactionsCount: stats.TransactionsCount,
	}
}
