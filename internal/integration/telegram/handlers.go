package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/finance-tracker/telegram-backend/internal/application/usecase/account"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/stats"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/transaction"
	"github.com/finance-tracker/telegram-backend/internal/application/usecase/user"
)

const (
	greetingReply = "Привет! 👋\n\n" +
		"Я бот для учёта ваших финансов. Помогу отслеживать доходы и расходы.\n\n" +
		"Нажмите кнопку ниже, чтобы открыть веб-приложение для управления финансами."

	webAppButtonLabel = "📊 Открыть учёт финансов"

	emptyBackupReply = "Нет данных для экспорта."
	backupCaption    = "📁 Ваш файл с данными"

	errorReply = "❌ Произошла ошибка при обработке данных."
)

// handleStart registers the user and replies with the web-app button.
func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	if _, err := b.getOrCreateUserUseCase.Execute(ctx, user.GetOrCreateUserInput{
		TelegramID: msg.From.ID,
	}); err != nil {
		return err
	}

	reply := tgbotapi.NewMessage(msg.Chat.ID, greetingReply)
	reply.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.InlineKeyboardButton{
				Text:   webAppButtonLabel,
				WebApp: &tgbotapi.WebAppInfo{URL: b.cfg.WebAppURL},
			},
		),
	)

	_, err := b.api.Send(reply)
	return err
}

// handleStats replies with per-account balances and overall totals.
func (b *Bot) handleStats(ctx context.Context, msg *tgbotapi.Message) error {
	userOutput, err := b.getOrCreateUserUseCase.Execute(ctx, user.GetOrCreateUserInput{
		TelegramID: msg.From.ID,
	})
	if err != nil {
		return err
	}

	accountsOutput, err := b.listAccountsUseCase.Execute(ctx, account.ListAccountsInput{
		UserID: msg.From.ID,
	})
	if err != nil {
		return err
	}

	statsOutput, err := b.getStatsUseCase.Execute(ctx, stats.GetStatsInput{
		UserID: msg.From.ID,
	})
	if err != nil {
		return err
	}

	currency := userOutput.User.Currency
	userStats := statsOutput.Stats

	var sb strings.Builder
	sb.WriteString("📊 **Статистика**\n\n")
	sb.WriteString("**Счета:**\n")
	for _, acc := range accountsOutput.Accounts {
		fmt.Fprintf(&sb, "  • %s: %s %s\n", acc.Name, acc.Balance.StringFixed(2), currency)
	}
	fmt.Fprintf(&sb, "\n**Общий баланс:** %s %s\n", userStats.TotalBalance.StringFixed(2), currency)
	fmt.Fprintf(&sb, "**Доходы:** %s %s\n", userStats.TotalIncome.StringFixed(2), currency)
	fmt.Fprintf(&sb, "**Расходы:** %s %s\n", userStats.TotalExpense.StringFixed(2), currency)
	fmt.Fprintf(&sb, "**Всего операций:** %d", userStats.TransactionsCount)

	reply := tgbotapi.NewMessage(msg.Chat.ID, sb.String())
	reply.ParseMode = tgbotapi.ModeMarkdown

	_, err = b.api.Send(reply)
	return err
}

// handleBackup exports the user's full transaction history as a CSV document.
func (b *Bot) handleBackup(ctx context.Context, msg *tgbotapi.Message) error {
	if _, err := b.getOrCreateUserUseCase.Execute(ctx, user.GetOrCreateUserInput{
		TelegramID: msg.From.ID,
	}); err != nil {
		return err
	}

	txnsOutput, err := b.listTransactionsUseCase.Execute(ctx, transaction.ListTransactionsInput{
		UserID: msg.From.ID,
	})
	if err != nil {
		return err
	}

	if len(txnsOutput.Transactions) == 0 {
		b.reply(msg.Chat.ID, emptyBackupReply)
		return nil
	}

	accountsOutput, err := b.listAccountsUseCase.Execute(ctx, account.ListAccountsInput{
		UserID: msg.From.ID,
	})
	if err != nil {
		return err
	}

	accountNames := make(map[int64]string, len(accountsOutput.Accounts))
	for _, acc := range accountsOutput.Accounts {
		accountNames[acc.ID] = acc.Name
	}

	content, err := BuildBackupCSV(txnsOutput.Transactions, accountNames)
	if err != nil {
		return err
	}

	filename := fmt.Sprintf("backup_%d_%s.csv", msg.From.ID, time.Now().Format("20060102_150405"))
	document := tgbotapi.NewDocument(msg.Chat.ID, tgbotapi.FileBytes{
		Name:  filename,
		Bytes: content,
	})
	document.Caption = backupCaption

	_, err = b.api.Send(document)
	return err
}
