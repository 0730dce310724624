// Package account contains account-related use cases.
package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
)

// MaxAccountNameLength is the maximum allowed length for account names.
const MaxAccountNameLength = 50

// CreateAccountInput represents the input for account creation.
type CreateAccountInput struct {
	UserID  int64
	Name    string
	Balance decimal.Decimal
}

// CreateAccountOutput represents the output of account creation.
type CreateAccountOutput struct {
	Account *entity.Account
}

// CreateAccountUseCase handles account creation logic.
type CreateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewCreateAccountUseCase creates a new CreateAccountUseCase instance.
func NewCreateAccountUseCase(accountRepo adapter.AccountRepository) *CreateAccountUseCase {
	return &CreateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account creation. Account names are not unique per
// user; duplicates are allowed.
func (uc *CreateAccountUseCase) Execute(ctx context.Context, input CreateAccountInput) (*CreateAccountOutput, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameEmpty,
			"account name cannot be empty",
			domainerror.ErrAccountNameEmpty,
		)
	}
	if len(input.Name) > MaxAccountNameLength {
		return nil, domainerror.NewAccountError(
			domainerror.ErrCodeAccountNameTooLong,
			fmt.Sprintf("account name must not exceed %d characters", MaxAccountNameLength),
			domainerror.ErrAccountNameTooLong,
		)
	}
	// Initial balances may be negative (an overdrawn account carried over),
	// but still need the two-fraction-digit representation.
	if !input.Balance.Equal(input.Balance.Round(2)) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"balance must have at most two fraction digits",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	account := entity.NewAccount(input.UserID, input.Name, input.Balance)
	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &CreateAccountOutput{Account: account}, nil
}
