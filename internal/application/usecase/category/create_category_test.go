// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
	domainerror "github.com/finance-tracker/telegram-backend/internal/domain/error"
)

// stubCategoryRepository records calls and returns canned results.
type stubCategoryRepository struct {
	created   *entity.Category
	deleteErr error
}

func (s *stubCategoryRepository) Create(_ context.Context, category *entity.Category) error {
	category.ID = 1
	s.created = category
	return nil
}

func (s *stubCategoryRepository) FindByUser(_ context.Context, _ int64) ([]*entity.Category, error) {
	return nil, nil
}

func (s *stubCategoryRepository) Delete(_ context.Context, _ int64) error {
	return s.deleteErr
}

func TestCreateCategoryUseCase_Execute(t *testing.T) {
	tests := []struct {
		name     string
		input    CreateCategoryInput
		wantCode domainerror.CategoryErrorCode
		wantIcon string
	}{
		{
			name:     "valid category with icon",
			input:    CreateCategoryInput{UserID: 100, Name: "Еда", Icon: "🍔", Type: entity.TransactionTypeExpense},
			wantIcon: "🍔",
		},
		{
			name:     "missing icon falls back to the default",
			input:    CreateCategoryInput{UserID: 100, Name: "Зарплата", Type: entity.TransactionTypeIncome},
			wantIcon: entity.DefaultCategoryIcon,
		},
		{
			name:     "empty name",
			input:    CreateCategoryInput{UserID: 100, Name: "", Type: entity.TransactionTypeExpense},
			wantCode: domainerror.ErrCodeCategoryNameEmpty,
		},
		{
			name:     "whitespace-only name",
			input:    CreateCategoryInput{UserID: 100, Name: "   ", Type: entity.TransactionTypeExpense},
			wantCode: domainerror.ErrCodeCategoryNameEmpty,
		},
		{
			name:     "name too long",
			input:    CreateCategoryInput{UserID: 100, Name: strings.Repeat("a", MaxCategoryNameLength+1), Type: entity.TransactionTypeExpense},
			wantCode: domainerror.ErrCodeCategoryNameTooLong,
		},
		{
			name:     "invalid type",
			input:    CreateCategoryInput{UserID: 100, Name: "Еда", Type: "transfer"},
			wantCode: domainerror.ErrCodeInvalidCategoryType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubCategoryRepository{}
			uc := NewCreateCategoryUseCase(repo)

			output, err := uc.Execute(context.Background(), tt.input)

			if tt.wantCode != "" {
				var catErr *domainerror.CategoryError
				if !errors.As(err, &catErr) {
					t.Fatalf("Execute() error = %v, want CategoryError", err)
				}
				if catErr.Code != tt.wantCode {
					t.Errorf("error code = %s, want %s", catErr.Code, tt.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if output.Category.Icon != tt.wantIcon {
				t.Errorf("Icon = %q, want %q", output.Category.Icon, tt.wantIcon)
			}
		})
	}
}

func TestDeleteCategoryUseCase_MapsNotFound(t *testing.T) {
	uc := NewDeleteCategoryUseCase(&stubCategoryRepository{deleteErr: domainerror.ErrCategoryNotFound})

	_, err := uc.Execute(context.Background(), DeleteCategoryInput{CategoryID: 42})

	var catErr *domainerror.CategoryError
	if !errors.As(err, &catErr) {
		t.Fatalf("Execute() error = %v, want CategoryError", err)
	}
	if catErr.Code != domainerror.ErrCodeCategoryNotFound {
		t.Errorf("error code = %s, want %s", catErr.Code, domainerror.ErrCodeCategoryNotFound)
	}
}
