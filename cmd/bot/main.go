// Package main is the entry point for the Telegram bot.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/finance-tracker/telegram-backend/config"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/account"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/stats"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/transaction"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/user"
	"github.com/finance-tracker/telegram-backend/internal/infra/db"
	"github.com/finance-tracker/telegram-backend/internal/integration/persistence"
	"github.com/finance-tracker/telegram-backend/internal/integration/persistence/model"
	"github.com/finance-tracker/telegram-backend/internal/integration/telegram"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	if cfg.Telegram.BotToken == "" {
		slog.Error("TELEGRAM_BOT_TOKEN is required")
		os.Exit(1)
	}

	slog.Info("Starting finance bot", "environment", cfg.Server.Environment)

	database, err := db.NewConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.AccountModel{},
		&model.CategoryModel{},
		&model.TransactionModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	userRepo := persistence.NewUserRepository(database.DB())
	accountRepo := persistence.NewAccountRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	statsRepo := persistence.NewStatsRepository(database.DB())

	bot, err := telegram.NewBot(
		&cfg.Telegram,
		user.NewGetOrCreateUserUseCase(userRepo),
		account.NewListAccountsUseCase(accountRepo),
		account.NewCreateAccountUseCase(accountRepo),
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewCreateTransactionUseCase(transactionRepo),
		stats.NewGetStatsUseCase(statsRepo),
	)
	if err != nil {
		slog.Error("Failed to start telegram bot", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Bot stopped with error", "error", err)
		os.Exit(1)
	}

	slog.Info("Bot exited properly")
}
