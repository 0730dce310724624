package telegram

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
)

// backupHeader is the CSV header row for transaction exports.
var backupHeader = []string{"ID", "Тип", "Сумма", "Категория", "Счёт", "Описание", "Дата"}

// BuildBackupCSV renders transactions as a CSV export. Transactions are
// written in the order given; accountNames maps account IDs to display names,
// missing entries render as an empty column.
func BuildBackupCSV(txns []*entity.Transaction, accountNames map[int64]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(backupHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, txn := range txns {
		record := []string{
			fmt.Sprintf("%d", txn.ID),
			string(txn.Type),
			txn.Amount.StringFixed(2),
			txn.Category,
			accountNames[txn.AccountID],
			txn.Description,
			txn.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}
