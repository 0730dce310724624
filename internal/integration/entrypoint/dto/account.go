package dto

import (
	"time"

	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
// Balance is a decimal string ("50.00"); it defaults to zero when omitted.
type CreateAccountRequest struct {
	UserID  int64  `json:"user_id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Balance string `json:"balance,omitempty"`
}

// UpdateAccountRequest represents the request body for a partial account update.
type UpdateAccountRequest struct {
	Name    *string `json:"name,omitempty"`
	Balance *string `json:"balance,omitempty"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(acc *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        acc.ID,
		UserID:    acc.UserID,
		Name:      acc.Name,
		Balance:   acc.Balance.StringFixed(2),
		CreatedAt: acc.CreatedAt,
	}
}

// ToAccountListResponse converts a list of accounts to an AccountListResponse.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	items := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		items[i] = ToAccountResponse(acc)
	}
	return AccountListResponse{
		Accounts: items,
	}
}
