package telegram

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/telegram-backend/internal/application/usecase/account"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/stats"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/transaction"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/user"
	"github.com/finance-tracker/telegram-backend/internal/integration/persistence"
	"github.com/finance-tracker/telegram-backend/internal/integration/persistence/model"
)

// newTestBot wires a bot against a fresh in-memory database. The Telegram
// API client stays nil; these tests only exercise payload processing.
func newTestBot(t *testing.T) (*Bot, *gorm.DB) {
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

	userRepo := persistence.NewUserRepository(db)
	accountRepo := persistence.NewAccountRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	statsRepo := persistence.NewStatsRepository(db)

	return &Bot{
		getOrCreateUserUseCase:   user.NewGetOrCreateUserUseCase(userRepo),
		listAccountsUseCase:      account.NewListAccountsUseCase(accountRepo),
		createAccountUseCase:     account.NewCreateAccountUseCase(accountRepo),
		listTransactionsUseCase:  transaction.NewListTransactionsUseCase(transactionRepo),
		createTransactionUseCase: transaction.NewCreateTransactionUseCase(transactionRepo),
		getStatsUseCase:          stats.NewGetStatsUseCase(statsRepo),
	}, db
}

func defaultAccountID(t *testing.T, db *gorm.DB, telegramID int64) int64 {
	t.Helper()

	accounts, err := persistence.NewAccountRepository(db).FindByUser(context.Background(), telegramID)
	if err != nil {
		t.Fatalf("failed to list accounts: %v", err)
	}
	if len(accounts) == 0 {
		t.Fatal("expected at least one account")
	}
	return accounts[0].ID
}

func TestProcessWebAppData_CreateAccount(t *testing.T) {
	bot, db := newTestBot(t)

	reply, err := bot.processWebAppData(context.Background(), 100,
		`{"type":"create_account","name":"Наличные","balance":500}`)
	if err != nil {
		t.Fatalf("processWebAppData() error = %v", err)
	}
	if reply != "✅ Счёт 'Наличные' создан!" {
		t.Errorf("reply = %q", reply)
	}

	accounts, err := persistence.NewAccountRepository(db).FindByUser(context.Background(), 100)
	if err != nil {
		t.Fatalf("failed to list accounts: %v", err)
	}
	// Default account plus the new one.
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[1].Name != "Наличные" || accounts[1].Balance.String() != "500" {
		t.Errorf("created account = %+v", accounts[1])
	}
}

func intToString(id int64) string {
	return strconv.FormatInt(id, 10)
}

func containsAll(s string, parts ...string) bool {
	for _, part := range parts {
		if !strings.Contains(s, part) {
			return false
		}
	}
	return true
}

func TestProcessWebAppData_Expense(t *testing.T) {
	bot, db := newTestBot(t)

	// First contact creates the user with their default account.
	if _, err := bot.processWebAppData(context.Background(), 100,
		`{"type":"create_account","name":"Карта","balance":100}`); err != nil {
		t.Fatalf("processWebAppData() error = %v", err)
	}
	accID := defaultAccountID(t, db, 100)

	reply, err := bot.processWebAppData(context.Background(), 100,
		`{"type":"expense","amount":50.5,"account_id":`+intToString(accID)+`,"category":"Продукты","description":"Ужин"}`)
	if err != nil {
		t.Fatalf("processWebAppData() error = %v", err)
	}

	if reply == "" || !containsAll(reply, "✅ Расход записан!", "50.50", "Продукты", "Основной") {
		t.Errorf("reply = %q", reply)
	}

	acc, err := persistence.NewAccountRepository(db).FindByID(context.Background(), accID)
	if err != nil {
		t.Fatalf("failed to read account: %v", err)
	}
	if acc.Balance.String() != "-50.5" {
		t.Errorf("balance = %s, want -50.5", acc.Balance.String())
	}
}

func TestProcessWebAppData_Income(t *testing.T) {
	bot, db := newTestBot(t)

	if _, err := bot.processWebAppData(context.Background(), 100,
		`{"type":"create_account","name":"Карта","balance":0}`); err != nil {
		t.Fatalf("processWebAppData() error = %v", err)
	}
	accID := defaultAccountID(t, db, 100)

	reply, err := bot.processWebAppData(context.Background(), 100,
		`{"type":"income","amount":20,"account_id":`+intToString(accID)+`,"category":"Зарплата"}`)
	if err != nil {
		t.Fatalf("processWebAppData() error = %v", err)
	}
	if !containsAll(reply, "✅ Доход записан!", "20.00", "Зарплата") {
		t.Errorf("reply = %q", reply)
	}
}

func TestProcessWebAppData_Failures(t *testing.T) {
	bot, _ := newTestBot(t)

	tests := []struct {
		name string
		data string
	}{
		{name: "malformed json", data: `{"type":`},
		{name: "unknown action", data: `{"type":"transfer"}`},
		{name: "missing account", data: `{"type":"expense","amount":10,"account_id":9999,"category":"x"}`},
		{name: "negative amount", data: `{"type":"expense","amount":-10,"account_id":1,"category":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := bot.processWebAppData(context.Background(), 100, tt.data); err == nil {
				t.Error("processWebAppData() expected an error")
			}
		})
	}
}
