// Package persistence implements the repository adapters on top of GORM.
package persistence

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
	"github.com/finance-tracker/telegram-backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// seedUser creates a user with their default account and returns the account.
func seedUser(t *testing.T, db *gorm.DB, telegramID int64) *entity.Account {
	t.Helper()

	repo := NewUserRepository(db)
	if _, err := repo.GetOrCreate(context.Background(), telegramID); err != nil {
		t.Fatalf("failed to seed user %d: %v", telegramID, err)
	}

	accounts, err := NewAccountRepository(db).FindByUser(context.Background(), telegramID)
	if err != nil {
		t.Fatalf("failed to load seeded accounts: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected one default account, got %d", len(accounts))
	}
	return accounts[0]
}

// seedAccount creates an extra account with the given balance.
func seedAccount(t *testing.T, db *gorm.DB, userID int64, name string, balance string) *entity.Account {
	t.Helper()

	acc := entity.NewAccount(userID, name, mustDecimal(t, balance))
	if err := NewAccountRepository(db).Create(context.Background(), acc); err != nil {
		t.Fatalf("failed to seed account %q: %v", name, err)
	}
	return acc
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("invalid decimal %q: %v", s, err)
	}
	return d
}

// accountBalance reads the current balance straight from the table.
func accountBalance(t *testing.T, db *gorm.DB, accountID int64) decimal.Decimal {
	t.Helper()

	acc, err := NewAccountRepository(db).FindByID(context.Background(), accountID)
	if err != nil {
		t.Fatalf("failed to read account %d: %v", accountID, err)
	}
	return acc.Balance
}

func assertBalance(t *testing.T, db *gorm.DB, accountID int64, want string) {
	t.Helper()

	got := accountBalance(t, db, accountID)
	if !got.Equal(mustDecimal(t, want)) {
		t.Errorf("account %d balance = %s, want %s", accountID, got.String(), want)
	}
}
