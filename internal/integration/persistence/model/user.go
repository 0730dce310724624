// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
)

// UserModel represents the users table in the database.
type UserModel struct {
	TelegramID int64     `gorm:"primaryKey"`
	Currency   string    `gorm:"type:varchar(3);default:'RUB'"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		TelegramID: m.TelegramID,
		Currency:   m.Currency,
		CreatedAt:  m.CreatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		TelegramID: user.TelegramID,
		Currency:   user.Currency,
		CreatedAt:  user.CreatedAt,
	}
}
