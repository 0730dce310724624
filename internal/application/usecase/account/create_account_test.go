// Package account contains account-related use cases.
package account

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/telegram-backend/internal/application/adapter"
	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
)

// stubAccountRepository records calls and returns canned results.
type stubAccountRepository struct {
	created   *entity.Account
	updateErr error
	deleteErr error
}

func (s *stubAccountRepository) Create(_ context.Context, account *entity.Account) error {
	account.ID = 1
	s.created = account
	return nil
}

func (s *stubAccountRepository) FindByID(_ context.Context, _ int64) (*entity.Account, error) {
	return nil, domainerror.ErrAccountNotFound
}

func (s *stubAccountRepository) FindByUser(_ context.Context, _ int64) ([]*entity.Account, error) {
	return nil, nil
}

func (s *stubAccountRepository) Update(_ context.Context, id int64, update adapter.AccountUpdate) (*entity.Account, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	acc := &entity.Account{ID: id, UserID: 100, Name: "stub"}
	if update.Name != nil {
		acc.Name = *update.Name
	}
	if update.Balance != nil {
		acc.Balance = *update.Balance
	}
	return acc, nil
}

func (s *stubAccountRepository) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

func TestCreateAccountUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateAccountInput
		wantCode domainerror.AccountErrorCode
	}{
		{
			name:  "valid account",
			input: CreateAccountInput{UserID: 100, Name: "Наличные", Balance: decimal.NewFromInt(10)},
		},
		{
			name:  "negative opening balance is allowed",
			input: CreateAccountInput{UserID: 100, Name: "Долг", Balance: decimal.NewFromInt(-500)},
		},
		{
			name:     "empty name",
			input:    CreateAccountInput{UserID: 100, Name: "", Balance: decimal.Zero},
			wantCode: domainerror.ErrCodeAccountNameEmpty,
		},
		{
			name:     "whitespace-only name",
			input:    CreateAccountInput{UserID: 100, Name: "   ", Balance: decimal.Zero},
			wantCode: domainerror.ErrCodeAccountNameEmpty,
		},
		{
			name:     "name too long",
			input:    CreateAccountInput{UserID: 100, Name: strings.Repeat("a", MaxAccountNameLength+1), Balance: decimal.Zero},
			wantCode: domainerror.ErrCodeAccountNameTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubAccountRepository{}
			uc := NewCreateAccountUseCase(repo)

			output, err := uc.Execute(context.Background(), tt.input)

			if tt.wantCode != "" {
				var accErr *domainerror.AccountError
				if !errors.As(err, &accErr) {
					t.Fatalf("Execute() error = %v, want AccountError", err)
				}
				if accErr.Code != tt.wantCode {
					t.Errorf("error code = %s, want %s", accErr.Code, tt.wantCode)
				}
				if repo.created != nil {
					t.Error("repository should not be called on validation failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if output.Account.ID == 0 {
				t.Error("expected created account to carry an ID")
			}
			if repo.created == nil {
				t.Fatal("expected repository Create to be called")
			}
		})
	}
}

func TestCreateAccountUseCase_RejectsFractionalBalance(t *testing.T) {
	uc := NewCreateAccountUseCase(&stubAccountRepository{})

	_, err := uc.Execute(context.Background(), CreateAccountInput{
		UserID:  100,
		Name:    "Копейки",
		Balance: decimal.RequireFromString("10.123"),
	})
	if err == nil {
		t.Fatal("Execute() expected error for three fraction digits")
	}
}

func TestDeleteAccountUseCase_MapsRepositoryErrors(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantCode domainerror.AccountErrorCode
	}{
		{
			name:     "not found",
			repoErr:  domainerror.ErrAccountNotFound,
			wantCode: domainerror.ErrCodeAccountNotFound,
		},
		{
			name:     "still referenced",
			repoErr:  domainerror.ErrAccountHasTransactions,
			wantCode: domainerror.ErrCodeAccountHasTransactions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewDeleteAccountUseCase(&stubAccountRepository{deleteErr: tt.repoErr})

			_, err := uc.Execute(context.Background(), DeleteAccountInput{AccountID: 1})

			var accErr *domainerror.AccountError
			if !errors.As(err, &accErr) {
				t.Fatalf("Execute() error = %v, want AccountError", err)
			}
			if accErr.Code != tt.wantCode {
				t.Errorf("error code = %s, want %s", accErr.Code, tt.wantCode)
			}
		})
	}
}

func TestUpdateAccountUseCase_Execute(t *testing.T) {
	t.Run("passes through partial updates", func(t *testing.T) {
		uc := NewUpdateAccountUseCase(&stubAccountRepository{})

		name := "Новое имя"
		output, err := uc.Execute(context.Background(), UpdateAccountInput{AccountID: 1, Name: &name})
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if output.Account.Name != name {
			t.Errorf("Name = %q, want %q", output.Account.Name, name)
		}
	})

	t.Run("maps missing account", func(t *testing.T) {
		uc := NewUpdateAccountUseCase(&stubAccountRepository{updateErr: domainerror.ErrAccountNotFound})

		name := "x"
		_, err := uc.Execute(context.Background(), UpdateAccountInput{AccountID: 42, Name: &name})

		var accErr *domainerror.AccountError
		if !errors.As(err, &accErr) {
			t.Fatalf("Execute() error = %v, want AccountError", err)
		}
		if accErr.Code != domainerror.ErrCodeAccountNotFound {
			t.Errorf("error code = %s, want %s", accErr.Code, domainerror.ErrCodeAccountNotFound)
		}
	})
}
