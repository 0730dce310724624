// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
	"github.com/finance-tracker/telegram-backend/internal/integration/persistence/model"
)

// userRepository implements the adapter.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance.
func NewUserRepository(db *gorm.DB) adapter.UserRepository {
	return &userRepository{
		db: db,
	}
}

// GetOrCreate returns the user with the given Telegram id. On first contact
// it inserts the user and their default account in a single database
// transaction, so a user never exists without an account.
func (r *userRepository) GetOrCreate(ctx context.Context, telegramID int64) (*entity.User, error) {
	var user *entity.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userModel model.UserModel
		result := tx.Where("telegram_id = ?", telegramID).First(&userModel)
		if result.Error == nil {
			user = userModel.ToEntity()
			return nil
		}
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		newUser := entity.NewUser(telegramID)
		if err := tx.Create(model.UserFromEntity(newUser)).Error; err != nil {
			return err
		}

		defaultAccount := entity.NewAccount(telegramID, entity.DefaultAccountName, decimal.Zero)
		if err := tx.Create(model.AccountFromEntity(defaultAccount)).Error; err != nil {
			return err
		}

		user = newUser
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// FindByID retrieves a user by their Telegram id.
func (r *userRepository) FindByID(ctx context.Context, telegramID int64) (*entity.User, error) {
	var userModel model.UserModel
	result := r.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&userModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrUserNotFound
		}
		return nil, result.Error
	}
	return userModel.ToEntity(), nil
}

// Delete removes the user and everything they own. The deletion is an
// explicit multi-row operation inside one database transaction rather than a
// storage-engine cascade, to keep the guarantee portable across drivers.
func (r *userRepository) Delete(ctx context.Context, telegramID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userModel model.UserModel
		result := tx.Where("telegram_id = ?", telegramID).First(&userModel)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return domainerror.ErrUserNotFound
			}
			return result.Error
		}

		if err := tx.Delete(&model.TransactionModel{}, "user_id = ?", telegramID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.CategoryModel{}, "user_id = ?", telegramID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&model.AccountModel{}, "user_id = ?", telegramID).Error; err != nil {
			return err
		}
		return tx.Delete(&model.UserModel{}, "telegram_id = ?", telegramID).Error
	})
}
