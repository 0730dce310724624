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

// MaxCategoryLength is the maximum allowed length for the free-text category label.
const MaxCategoryLength = 50

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      int64
	AccountID   int64
	Type        entity.TransactionType
	Amount      decimal.Decimal
	Category    string
	Description string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic. The balance
// effect on the owning account is applied atomically with the insert.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !ledger.ValidAmount(input.Amount) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be non-negative with at most two fraction digits",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if len(input.Category) > MaxCategoryLength {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionCategoryLong,
			fmt.Sprintf("category must not exceed %d characters", MaxCategoryLength),
			domainerror.ErrTransactionCategoryTooLong,
		)
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.AccountID,
		input.Type,
		input.Amount,
		input.Category,
		input.Description,
	)

	if err := uc.transactionRepo.CreateWithBalance(ctx, transaction); err != nil {
		if errors.Is(err, domainerror.ErrAccountNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionAccountMissing,
				"account not found for this user",
				domainerror.ErrAccountNotFound,
			)
		}
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: transaction}, nil
}
