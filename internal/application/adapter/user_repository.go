// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// GetOrCreate returns the user with the given Telegram id, creating it
	// together with the default account in a single durable unit on first call.
	GetOrCreate(ctx context.Context, telegramID int64) (*entity.User, error)

	// FindByID retrieves a user by their Telegram id.
	FindByID(ctx context.Context, telegramID int64) (*entity.User, error)

	// Delete removes the user and all of their accounts, categories and
	// transactions as one atomic multi-row deletion.
	Delete(ctx context.Context, telegramID int64) error
}
