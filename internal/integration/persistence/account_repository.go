// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
	"github.com/finance-tracker/telegram-backend/internal/integration/persistence/model"
)

// accountRepository implements the adapter.AccountRepository interface.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository instance.
func NewAccountRepository(db *gorm.DB) adapter.AccountRepository {
	return &accountRepository{
		db: db,
	}
}

// Create creates a new account in the database.
func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountModel := model.AccountFromEntity(account)
	result := r.db.WithContext(ctx).Create(accountModel)
	if result.Error != nil {
		return result.Error
	}
	account.ID = accountModel.ID
	return nil
}

// FindByID retrieves an account by its id.
func (r *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var accountModel model.AccountModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAccountNotFound
		}
		return nil, result.Error
	}
	return accountModel.ToEntity(), nil
}

// FindByUser retrieves all accounts for a given user.
func (r *accountRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&accountModels)
	if result.Error != nil {
		return nil, result.Error
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i, am := range accountModels {
		accounts[i] = am.ToEntity()
	}
	return accounts, nil
}

// Update applies a partial update to an account. Only the fields present in
// the update are written; setting the balance is the manual override path
// that intentionally bypasses the ledger.
func (r *accountRepository) Update(ctx context.Context, id int64, update adapter.AccountUpdate) (*entity.Account, error) {
	var updated *entity.Account

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var accountModel model.AccountModel
		result := tx.Where("id = ?", id).First(&accountModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrAccountNotFound
			}
			return result.Error
		}

		if update.Name != nil {
			accountModel.Name = *update.Name
		}
		if update.Balance != nil {
			accountModel.Balance = *update.Balance
		}

		if err := tx.Save(&accountModel).Error; err != nil {
			return err
		}

		updated = accountModel.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes an account. Deletion is rejected while transactions still
// reference the account; the check and the delete run in the same database
// transaction so the policy holds even against a concurrent insert.
func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var accountModel model.AccountModel
		result := tx.Where("id = ?", id).First(&accountModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrAccountNotFound
			}
			return result.Error
		}

		var count int64
		if err := tx.Model(&model.TransactionModel{}).
			Where("account_id = ?", id).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domainerror.ErrAccountHasTransactions
		}

		return tx.Delete(&model.AccountModel{}, "id = ?", id).Error
	})
}
