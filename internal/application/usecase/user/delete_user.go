// Package user contains user-related use cases.
package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
)

// DeleteUserInput represents the input for user deletion.
type DeleteUserInput struct {
	TelegramID int64
}

// DeleteUserOutput represents the output of user deletion.
type DeleteUserOutput struct {
	Success bool
}

// DeleteUserUseCase removes a user and everything they own.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the cascading deletion.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, input DeleteUserInput) (*DeleteUserOutput, error) {
	if err := uc.userRepo.Delete(ctx, input.TelegramID); err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewUserError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return &DeleteUserOutput{Success: true}, nil
}
