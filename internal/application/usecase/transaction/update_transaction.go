// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
	"github.com/finance-tracker/telegram-backend/internal/domain/ledger"
)

// UpdateTransactionInput represents the input for transaction update. Nil
// fields are left unchanged. The transaction type cannot be changed after
// creation and is deliberately not part of this input.
type UpdateTransactionInput struct {
	TransactionID int64
	Amount        *decimal.Decimal
	Category      *string
	Description   *string
	AccountID     *int64
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic, including moves
// between accounts. Balance adjustments commit atomically with the row write.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	if input.Amount != nil && !ledger.ValidAmount(*input.Amount) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be non-negative with at most two fraction digits",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if input.Category != nil && len(*input.Category) > MaxCategoryLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionCategoryLong,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrTransactionCategoryTooLong,
		)
	}

	updated, err := uc.transactionRepo.UpdateWithBalance(ctx, input.TransactionID, adapter.TransactionUpdate{
		Amount:      input.Amount,
		Category:    input.Category,
		Description: input.Description,
		AccountID:   input.AccountID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrTransactionNotFound):
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		case errors.Is(err, domainerror.ErrAccountNotFound):
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionAccountMissing,
				"target account not found for this user",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: updated}, nil
}
