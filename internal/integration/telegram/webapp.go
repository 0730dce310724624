package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/telegram-backend/internal/application/usecase/account"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/transaction"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/user"
	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
)

// Web app action tags.
const (
	actionCreateAccount = "create_account"
	actionExpense       = "expense"
	actionIncome        = "income"
)

// webAppPayload is the JSON message the web app sends through Telegram.
// Numeric fields arrive as JSON numbers.
type webAppPayload struct {
	Type        string      `json:"type"`
	Name        string      `json:"name"`
	Balance     json.Number `json:"balance"`
	Amount      json.Number `json:"amount"`
	AccountID   int64       `json:"account_id"`
	Category    string      `json:"category"`
	Description string      `json:"description"`
}

// handleWebAppData routes a web-app payload to the matching use case. Any
// failure is reported to the user as a single generic message; details stay
// in the log.
func (b *Bot) handleWebAppData(ctx context.Context, msg *tgbotapi.Message) {
	reply, err := b.processWebAppData(ctx, msg.From.ID, msg.WebAppData.Data)
	if err != nil {
		slog.Error("Web app data processing failed",
			"telegram_id", msg.From.ID,
			"error", err,
		)
		b.reply(msg.Chat.ID, errorReply)
		return
	}
	if reply != "" {
		b.reply(msg.Chat.ID, reply)
	}
}

// processWebAppData parses and executes one payload, returning the reply text.
func (b *Bot) processWebAppData(ctx context.Context, telegramID int64, data string) (string, error) {
	var payload webAppPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		return "", fmt.Errorf("failed to parse web app payload: %w", err)
	}

	if _, err := b.getOrCreateUserUseCase.Execute(ctx, user.GetOrCreateUserInput{
		TelegramID: telegramID,
	}); err != nil {
		return "", err
	}

	switch payload.Type {
	case actionCreateAccount:
		return b.processCreateAccount(ctx, telegramID, payload)
	case actionExpense:
		return b.processTransaction(ctx, telegramID, payload, entity.TransactionTypeExpense)
	case actionIncome:
		return b.processTransaction(ctx, telegramID, payload, entity.TransactionTypeIncome)
	default:
		return "", fmt.Errorf("unknown web app action: %q", payload.Type)
	}
}

func (b *Bot) processCreateAccount(ctx context.Context, telegramID int64, payload webAppPayload) (string, error) {
	balance := decimal.Zero
	if payload.Balance != "" {
		parsed, err := decimal.NewFromString(payload.Balance.String())
		if err != nil {
			return "", fmt.Errorf("invalid balance in web app payload: %w", err)
		}
		balance = parsed
	}

	output, err := b.createAccountUseCase.Execute(ctx, account.CreateAccountInput{
		UserID:  telegramID,
		Name:    payload.Name,
		Balance: balance,
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("✅ Счёт '%s' создан!", output.Account.Name), nil
}

func (b *Bot) processTransaction(ctx context.Context, telegramID int64, payload webAppPayload, txnType entity.TransactionType) (string, error) {
	amount, err := decimal.NewFromString(payload.Amount.String())
	if err != nil {
		return "", fmt.Errorf("invalid amount in web app payload: %w", err)
	}

	userOutput, err := b.getOrCreateUserUseCase.Execute(ctx, user.GetOrCreateUserInput{
		TelegramID: telegramID,
	})
	if err != nil {
		return "", err
	}

	output, err := b.createTransactionUseCase.Execute(ctx, transaction.CreateTransactionInput{
		UserID:      telegramID,
		AccountID:   payload.AccountID,
		Type:        txnType,
		Amount:      amount,
		Category:    payload.Category,
		Description: payload.Description,
	})
	if err != nil {
		return "", err
	}

	accountName := ""
	accountsOutput, err := b.listAccountsUseCase.Execute(ctx, account.ListAccountsInput{
		UserID: telegramID,
	})
	if err == nil {
		for _, acc := range accountsOutput.Accounts {
			if acc.ID == output.Transaction.AccountID {
				accountName = acc.Name
				break
			}
		}
	}

	header := "✅ Расход записан!"
	if txnType == entity.TransactionTypeIncome {
		header = "✅ Доход записан!"
	}

	return fmt.Sprintf("%s\nСумма: %s %s\nКатегория: %s\nСчёт: %s",
		header,
		output.Transaction.Amount.StringFixed(2),
		userOutput.User.Currency,
		output.Transaction.Category,
		accountName,
	), nil
}
