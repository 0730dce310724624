// Package main is the entry point for the finance bot API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/finance-tracker/telegram-backend/config"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/account"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/category"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/stats"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/transaction"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/user"
	"github.com/finance-tracker/telegram-backend/internal/infra/db"
	"github.com/finance-tracker/telegram-backend/internal/infra/server/router"
	"github.com/finance-tracker/telegram-backend/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/telegram-backend/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/telegram-backend/internal/integration/persistence"
	"github.com/finance-tracker/telegram-backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting finance bot API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

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
	slog.Info("Database migrations completed successfully")

	// Repositories
	userRepo := persistence.NewUserRepository(database.DB())
	accountRepo := persistence.NewAccountRepository(database.DB())
	categoryRepo := persistence.NewCategoryRepository(database.DB())
	transactionRepo := persistence.NewTransactionRepository(database.DB())
	statsRepo := persistence.NewStatsRepository(database.DB())

	// Use cases
	getOrCreateUserUseCase := user.NewGetOrCreateUserUseCase(userRepo)
	getOverviewUseCase := user.NewGetOverviewUseCase(userRepo, accountRepo, transactionRepo)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo)

	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	createAccountUseCase := account.NewCreateAccountUseCase(accountRepo)
	updateAccountUseCase := account.NewUpdateAccountUseCase(accountRepo)
	deleteAccountUseCase := account.NewDeleteAccountUseCase(accountRepo)

	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	getStatsUseCase := stats.NewGetStatsUseCase(statsRepo)

	// Controllers and middleware
	healthController := controller.NewHealthController(database.HealthCheck)
	userController := controller.NewUserController(getOrCreateUserUseCase, getOverviewUseCase, deleteUserUseCase)
	accountController := controller.NewAccountController(listAccountsUseCase, createAccountUseCase, updateAccountUseCase, deleteAccountUseCase)
	categoryController := controller.NewCategoryController(listCategoriesUseCase, createCategoryUseCase, deleteCategoryUseCase)
	transactionController := controller.NewTransactionController(listTransactionsUseCase, createTransactionUseCase, updateTransactionUseCase, deleteTransactionUseCase)
	statsController := controller.NewStatsController(getStatsUseCase)
	rateLimiter := middleware.NewRateLimiter()

	r := router.NewRouter(
		healthController,
		userController,
		accountController,
		categoryController,
		transactionController,
		statsController,
		rateLimiter,
	)
	engine := r.Setup(cfg.Server.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
