// Package account contains account-related use cases.
package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	AccountID int64
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Success bool
}

// DeleteAccountUseCase handles account deletion logic.
//
// Deletion is rejected while transactions still reference the account, so a
// balance history can never silently lose its owning account.
type DeleteAccountUseCase struct {
	accountRepo adapter.AccountRepository
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(accountRepo adapter.AccountRepository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		accountRepo: accountRepo,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	if err := uc.accountRepo.Delete(ctx, input.AccountID); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrAccountNotFound):
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountNotFound,
				"account not found",
				domainerror.ErrAccountNotFound,
			)
		case errors.Is(err, domainerror.ErrAccountHasTransactions):
			return nil, domainerror.NewAccountError(
				domainerror.ErrCodeAccountHasTransactions,
				"account still has transactions; delete or move them first",
				domainerror.ErrAccountHasTransactions,
			)
		}
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	return &DeleteAccountOutput{Success: true}, nil
}
