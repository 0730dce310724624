// Package stats contains the aggregation use case.
package stats

import (
	"context"
	"fmt"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
)

// GetStatsInput represents the input for the statistics aggregation.
type GetStatsInput struct {
	UserID int64
}

// GetStatsOutput represents the aggregated statistics for a user.
type GetStatsOutput struct {
	Stats *adapter.UserStats
}

// GetStatsUseCase computes total balance, income, expense and entity counts
// for a user. A pure read-only scan, recomputed on every call.
type GetStatsUseCase struct {
	statsRepo adapter.StatsRepository
}

// NewGetStatsUseCase creates a new GetStatsUseCase instance.
func NewGetStatsUseCase(statsRepo adapter.StatsRepository) *GetStatsUseCase {
	return &GetStatsUseCase{
		statsRepo: statsRepo,
	}
}

// Execute computes the statistics.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	stats, err := uc.statsRepo.GetUserStats(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return &GetStatsOutput{Stats: stats}, nil
}
