// Package telegram implements the Telegram bot front-end. The bot talks to
// the same use cases as the HTTP API, so every balance mutation goes through
// the shared bookkeeping path.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/finance-tracker/telegram-backend/config"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/account"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/stats"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/transaction"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/user"
)

// Bot wraps the Telegram API client and the use cases it drives.
type Bot struct {
	api *tgbotapi.BotAPI
	cfg *config.TelegramConfig

	getOrCreateUserUseCase   *user.GetOrCreateUserUseCase
	listAccountsUseCase      *account.ListAccountsUseCase
	createAccountUseCase     *account.CreateAccountUseCase
	listTransactionsUseCase  *transaction.ListTransactionsUseCase
	createTransactionUseCase *transaction.CreateTransactionUseCase
	getStatsUseCase          *stats.GetStatsUseCase
}

// NewBot creates a bot instance connected to the Telegram API.
func NewBot(
	cfg *config.TelegramConfig,
	getOrCreateUserUseCase *user.GetOrCreateUserUseCase,
	listAccountsUseCase *account.ListAccountsUseCase,
	createAccountUseCase *account.CreateAccountUseCase,
	listTransactionsUseCase *transaction.ListTransactionsUseCase,
	createTransactionUseCase *transaction.CreateTransactionUseCase,
	getStatsUseCase *stats.GetStatsUseCase,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to telegram: %w", err)
	}
	if cfg.UpdateBuffer > 0 {
		api.Buffer = cfg.UpdateBuffer
	}

	slog.Info("Telegram bot authorized", "username", api.Self.UserName)

	return &Bot{
		api:                      api,
		cfg:                      cfg,
		getOrCreateUserUseCase:   getOrCreateUserUseCase,
		listAccountsUseCase:      listAccountsUseCase,
		createAccountUseCase:     createAccountUseCase,
		listTransactionsUseCase:  listTransactionsUseCase,
		createTransactionUseCase: createTransactionUseCase,
		getStatsUseCase:          getStatsUseCase,
	}, nil
}

// Run starts the long-polling loop and blocks until the context is canceled.
func (b *Bot) Run(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = int(b.cfg.PollTimeout.Seconds())

	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate dispatches a single update. Handler failures are logged and
// answered with a generic message so the loop never dies on one bad update.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil {
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, b.cfg.DefaultTimeout)
	defer cancel()

	msg := update.Message

	if msg.WebAppData != nil {
		b.handleWebAppData(reqCtx, msg)
		return
	}

	if !msg.IsCommand() {
		return
	}

	var err error
	switch msg.Command() {
	case "start":
		err = b.handleStart(reqCtx, msg)
	case "stats":
		err = b.handleStats(reqCtx, msg)
	case "backup":
		err = b.handleBackup(reqCtx, msg)
	default:
		return
	}

	if err != nil {
		slog.Error("Command handler failed",
			"command", msg.Command(),
			"telegram_id", msg.From.ID,
			"error", err,
		)
		b.reply(msg.Chat.ID, errorReply)
	}
}

// reply sends a plain text message, logging send failures.
func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		slog.Error("Failed to send message", "chat_id", chatID, "error", err)
	}
}
