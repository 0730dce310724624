package dto

import (
	"time"

	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
)

// UserResponse represents a user in API responses.
type UserResponse struct {
	TelegramID int64     `json:"telegram_id"`
	Currency   string    `json:"currency"`
	CreatedAt  time.Time `json:"created_at"`
}

// OverviewResponse bundles a user with their accounts and recent transactions.
type OverviewResponse struct {
	User         UserResponse          `json:"user"`
	Accounts     []AccountResponse     `json:"accounts"`
	Transactions []TransactionResponse `json:"transactions"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		TelegramID: user.TelegramID,
		Currency:   user.Currency,
		CreatedAt:  user.CreatedAt,
	}
}

// ToOverviewResponse assembles the full overview response.
func ToOverviewResponse(user *entity.User, accounts []*entity.Account, txns []*entity.Transaction) OverviewResponse {
	return OverviewResponse{
		User:         ToUserResponse(user),
		Accounts:     ToAccountListResponse(accounts).Accounts,
		Transactions: ToTransactionListResponse(txns).Transactions,
	}
}
