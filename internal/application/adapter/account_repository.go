// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
)

// AccountUpdate carries the optional fields of a partial account update.
// A nil field leaves the stored value unchanged. Setting Balance overwrites
// the ledger-maintained balance intentionally.
type AccountUpdate struct {
	Name    *string
	Balance *decimal.Decimal
}

// AccountRepository defines the interface for account persistence operations.
type AccountRepository interface {
	// Create creates a new account in the database.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves an account by its id.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByUser retrieves all accounts for a given user.
	FindByUser(ctx context.Context, userID int64) ([]*entity.Account, error)

	// Update applies a partial update to an account.
	Update(ctx context.Context, id int64, update AccountUpdate) (*entity.Account, error)

	// Delete removes an account. It fails with ErrAccountHasTransactions while
	// any transaction still references the account.
	Delete(ctx context.Context, id int64) error
}
