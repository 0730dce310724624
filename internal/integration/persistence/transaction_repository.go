// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
	"github.com/finance-tracker/telegram-backend/internal/domain/ledger"
	"github.com/finance-tracker/telegram-backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// CreateWithBalance inserts a transaction and applies its balance effect to
// the owning account in one database transaction. The account must belong to
// the user claimed on the transaction.
func (r *transactionRepository) CreateWithBalance(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var accountModel model.AccountModel
		result := tx.Where("id = ? AND user_id = ?", transaction.AccountID, transaction.UserID).
			First(&accountModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrAccountNotFound
			}
			return result.Error
		}

		transactionModel := model.TransactionFromEntity(transaction)
		if err := tx.Create(transactionModel).Error; err != nil {
			return err
		}
		transaction.ID = transactionModel.ID

		adj := ledger.CreateAdjustment(transaction)
		return applyAdjustment(tx, adj)
	})
}

// FindByID retrieves a transaction by its id.
func (r *transactionRepository) FindByID(ctx context.Context, id int64) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// FindByUser retrieves transactions for a user ordered by creation timestamp
// descending.
func (r *transactionRepository) FindByUser(ctx context.Context, userID int64, limit int) ([]*entity.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var transactionModels []model.TransactionModel
	if result := query.Find(&transactionModels); result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntity()
	}
	return transactions, nil
}

// UpdateWithBalance applies a partial update to a transaction together with
// exactly one net balance adjustment.
//
// The stored row is snapshotted before any field mutation; the adjustment is
// computed from that snapshot and the requested final amount/account, so an
// update that changes both in one call never double-counts.
func (r *transactionRepository) UpdateWithBalance(ctx context.Context, id int64, update adapter.TransactionUpdate) (*entity.Transaction, error) {
	var updated *entity.Transaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transactionModel model.TransactionModel
		result := tx.Where("id = ?", id).First(&transactionModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrTransactionNotFound
			}
			return result.Error
		}

		original := transactionModel.ToEntity()

		newAmount := original.Amount
		if update.Amount != nil {
			newAmount = *update.Amount
		}
		newAccountID := original.AccountID
		if update.AccountID != nil {
			newAccountID = *update.AccountID
		}

		// A moved transaction must land on an account of the same user.
		if newAccountID != original.AccountID {
			var target model.AccountModel
			result := tx.Where("id = ? AND user_id = ?", newAccountID, original.UserID).
				First(&target)
			if result.Error != nil {
				if errors.Is(result.Error, gorm.ErrRecordNotFound) {
					return domainerror.ErrAccountNotFound
				}
				return result.Error
			}
		}

		transactionModel.Amount = newAmount
		transactionModel.AccountID = newAccountID
		if update.Category != nil {
			transactionModel.Category = *update.Category
		}
		if update.Description != nil {
			transactionModel.Description = *update.Description
		}

		if err := tx.Save(&transactionModel).Error; err != nil {
			return err
		}

		for _, adj := range ledger.UpdateAdjustments(original, newAmount, newAccountID) {
			if err := applyAdjustment(tx, adj); err != nil {
				return err
			}
		}

		updated = transactionModel.ToEntity()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteWithBalance removes a transaction and reverses its original balance
// effect in one database transaction.
func (r *transactionRepository) DeleteWithBalance(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var transactionModel model.TransactionModel
		result := tx.Where("id = ?", id).First(&transactionModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrTransactionNotFound
			}
			return result.Error
		}

		if err := tx.Delete(&model.TransactionModel{}, "id = ?", id).Error; err != nil {
			return err
		}

		adj := ledger.DeleteAdjustment(transactionModel.ToEntity())
		return applyAdjustment(tx, adj)
	})
}

// CountByAccount returns the number of transactions referencing an account.
func (r *transactionRepository) CountByAccount(ctx context.Context, accountID int64) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("account_id = ?", accountID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// applyAdjustment adds a ledger delta to an account balance using decimal
// arithmetic end to end. The read and write happen inside the caller's
// database transaction.
func applyAdjustment(tx *gorm.DB, adj ledger.Adjustment) error {
	if adj.Delta.IsZero() {
		return nil
	}

	var accountModel model.AccountModel
	result := tx.Where("id = ?", adj.AccountID).First(&accountModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domainerror.ErrAccountNotFound
		}
		return result.Error
	}

	newBalance := accountModel.Balance.Add(adj.Delta)
	return tx.Model(&model.AccountModel{}).
		Where("id = ?", adj.AccountID).
		Update("balance", newBalance).Error
}
