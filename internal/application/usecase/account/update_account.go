// Package account contains account-related use cases.
package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
)

// UpdateAccountInput represents the input for account update. Nil fields are
// left unchanged. Setting Balance is the manual override that bypasses the
// ledger invariant.
type UpdateAccountInput struct {
	AccountID int64
	Name      *string
	Balance   *decimal.Decimal
}

// UpdateAccountOutput represents the output of account update.
type UpdateAccountOutput struct {
	Account *entity.Account
}

// UpdateAccountUseCase handles account update logic.
type UpdateAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(accountRepo adapter.AccountRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the partial account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameEmpty,
				"account name cannot be empty",
				domainerror.ErrAccountNameEmpty,
			)
		}
		if len(*input.Name) > MaxAccountNameLength {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNameTooLong,
				fmt.Sprintf("account name must not exceed %d characters", MaxAccountNameLength),
				domainerror.ErrAccountNameTooLong,
			)
		}
	}
	if input.Balance != nil && !input.Balance.Equal(input.Balance.Round(2)) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"balance must have at most two fraction digits",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	account, err := uc.accountRepo.Update(ctx, input.AccountID, adapter.AccountUpdate{
		Name:    input.Name,
		Balance: input.Balance,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{Account: account}, nil
}
