// Package user contains user-related use cases.
package user

import (
	"context"
	"fmt"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
)

// GetOrCreateUserInput represents the input for the lazy user lookup.
type GetOrCreateUserInput struct {
	TelegramID int64
}

// GetOrCreateUserOutput represents the output of the lazy user lookup.
type GetOrCreateUserOutput struct {
	User *entity.User
}

// GetOrCreateUserUseCase returns the user for a Telegram id, creating it with
// the default account on first contact.
type GetOrCreateUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetOrCreateUserUseCase creates a new GetOrCreateUserUseCase instance.
func NewGetOrCreateUserUseCase(userRepo adapter.UserRepository) *GetOrCreateUserUseCase {
	return &GetOrCreateUserUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the lookup, creating the user lazily. Calling it twice
// with the same id returns the same user and never a second default account.
func (uc *GetOrCreateUserUseCase) Execute(ctx context.Context, input GetOrCreateUserInput) (*GetOrCreateUserOutput, error) {
	user, err := uc.userRepo.GetOrCreate(ctx, input.TelegramID)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user: %w", err)
	}

	return &GetOrCreateUserOutput{User: user}, nil
}
