// Package user contains user-related use cases.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
)

// overviewTransactionLimit caps the recent transactions returned with the
// overview, matching the web app's initial page size.
const overviewTransactionLimit = 50

// GetOverviewInput represents the input for the user overview.
type GetOverviewInput struct {
	TelegramID int64
}

// GetOverviewOutput bundles the user with their accounts and most recent
// transactions.
type GetOverviewOutput struct {
	User         *entity.User
	Accounts     []*entity.Account
	Transactions []*entity.Transaction
}

// GetOverviewUseCase assembles a user's full state for client rendering.
type GetOverviewUseCase struct {
	userRepo        adapter.UserRepository
	accountRepo     adapter.AccountRepository
	transactionRepo adapter.TransactionRepository
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	userRepo adapter.UserRepository,
	accountRepo adapter.AccountRepository,
	transactionRepo adapter.TransactionRepository,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// Execute fetches the overview. Unlike GetOrCreate, a missing user is an error here.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.TelegramID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	accounts, err := uc.accountRepo.FindByUser(ctx, input.TelegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	transactions, err := uc.transactionRepo.FindByUser(ctx, input.TelegramID, overviewTransactionLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &GetOverviewOutput{
		User:         user,
		Accounts:     accounts,
		Transactions: transactions,
	}, nil
}
