// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
	"github.com/finance-tracker/telegram-backend/internal/integration/persistence/model"
)

// statsRepository implements the adapter.StatsRepository interface.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository instance.
func NewStatsRepository(db *gorm.DB) adapter.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// GetUserStats computes the aggregated statistics for a user. Every call
// recomputes from the current rows; nothing is cached.
func (r *statsRepository) GetUserStats(ctx context.Context, userID int64) (*adapter.UserStats, error) {
	stats := &adapter.UserStats{}

	var balanceResult struct {
		Total decimal.Decimal
		Count int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Select("COALESCE(SUM(balance), 0) as total, COUNT(*) as count").
		Where("user_id = ?", userID).
		Scan(&balanceResult)
	if result.Error != nil {
		return nil, result.Error
	}
	stats.TotalBalance = balanceResult.Total
	stats.AccountsCount = balanceResult.Count

	var incomeResult struct {
		Total decimal.Decimal
	}
	result = r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND type = ?", userID, string(entity.TransactionTypeIncome)).
		Scan(&incomeResult)
	if result.Error != nil {
		return nil, result.Error
	}
	stats.TotalIncome = incomeResult.Total

	var expenseResult struct {
		Total decimal.Decimal
	}
	result = r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND type = ?", userID, string(entity.TransactionTypeExpense)).
		Scan(&expenseResult)
	if result.Error != nil {
		return nil, result.Error
	}
	stats.TotalExpense = expenseResult.Total

	result = r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("user_id = ?", userID).
		Count(&stats.TransactionsCount)
	if result.Error != nil {
		return nil, result.Error
	}

	return stats, nil
}
