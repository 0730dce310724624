// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
)

// TransactionUpdate carries the optional fields of a partial transaction
// update. A nil field leaves the stored value unchanged. The transaction type
// is immutable and deliberately absent.
type TransactionUpdate struct {
	Amount      *decimal.Decimal
	Category    *string
	Description *string
	AccountID   *int64
}

// TransactionRepository defines the interface for transaction persistence
// operations. The *WithBalance methods apply the ledger adjustment and the
// row write in one database transaction: both commit or neither does.
type TransactionRepository interface {
	// CreateWithBalance inserts a transaction and applies its balance effect to
	// the owning account. It fails with ErrAccountNotFound when the
	// (accountID, userID) pair does not resolve to an existing account.
	CreateWithBalance(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its id.
	FindByID(ctx context.Context, id int64) (*entity.Transaction, error)

	// FindByUser retrieves transactions for a user ordered by creation
	// timestamp descending. A limit <= 0 means no limit.
	FindByUser(ctx context.Context, userID int64, limit int) ([]*entity.Transaction, error)

	// UpdateWithBalance applies a partial update and exactly one net balance
	// adjustment computed from a snapshot of the stored row.
	UpdateWithBalance(ctx context.Context, id int64, update TransactionUpdate) (*entity.Transaction, error)

	// DeleteWithBalance removes a transaction and reverses its original balance
	// effect.
	DeleteWithBalance(ctx context.Context, id int64) error

	// CountByAccount returns the number of transactions referencing an account.
	CountByAccount(ctx context.Context, accountID int64) (int64, error)
}
