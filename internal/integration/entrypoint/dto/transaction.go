package dto

import (
	"time"

	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount is a decimal string ("50.00") to avoid float rounding on the wire.
type CreateTransactionRequest struct {
	UserID      int64  `json:"user_id" binding:"required"`
	AccountID   int64  `json:"account_id" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=expense income"`
	Amount      string `json:"amount" binding:"required"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateTransactionRequest represents the request body for a partial
// transaction update. The type is immutable after creation.
type UpdateTransactionRequest struct {
	Amount      *string `json:"amount,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	AccountID   *int64  `json:"account_id,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	AccountID   int64     `json:"account_id"`
	Type        string    `json:"type"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.ID,
		UserID:      txn.UserID,
		AccountID:   txn.AccountID,
		Type:        string(txn.Type),
		Amount:      txn.Amount.StringFixed(2),
		Category:    txn.Category,
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
	}
}

// ToTransactionListResponse converts a list of transactions to a TransactionListResponse.
func ToTransactionListResponse(txns []*entity.Transaction) TransactionListResponse {
	items := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		items[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: items,
	}
}
