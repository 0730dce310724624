// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// DefaultCurrency is the currency assigned to users created lazily on first contact.
const DefaultCurrency = "RUB"

// DefaultAccountName is the name of the account created together with a new user.
const DefaultAccountName = "Основной"

// User represents a bot user, keyed by their Telegram account id.
type User struct {
	TelegramID int64
	Currency   string
	CreatedAt  time.Time
}

// NewUser creates a new User with default values.
func NewUser(telegramID int64) *User {
	return &User{
		TelegramID: telegramID,
		Currency:   DefaultCurrency,
		CreatedAt:  time.Now().UTC(),
	}
}
