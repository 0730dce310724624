// Package ledger contains the balance bookkeeping rules that keep an
// account's balance consistent with the set of transactions referencing it.
//
// The functions here are pure: they compute the balance adjustments an
// operation requires, and the persistence layer applies them in the same
// database transaction as the row write.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/telegram-backend/internal/domain/entity"
)

var (
	plusOne  = decimal.NewFromInt(1)
	minusOne = decimal.NewFromInt(-1)
)

// Sign returns the balance effect direction of a transaction type:
// +1 for income, -1 for expense.
func Sign(t entity.TransactionType) decimal.Decimal {
	if t == entity.TransactionTypeIncome {
		return plusOne
	}
	return minusOne
}

// Effect returns the signed balance contribution of a transaction.
func Effect(t *entity.Transaction) decimal.Decimal {
	return t.Amount.Mul(Sign(t.Type))
}

// Adjustment is a single balance delta to apply to an account.
type Adjustment struct {
	AccountID int64
	Delta     decimal.Decimal
}

// CreateAdjustment returns the adjustment for recording a new transaction.
func CreateAdjustment(t *entity.Transaction) Adjustment {
	return Adjustment{AccountID: t.AccountID, Delta: Effect(t)}
}

// DeleteAdjustment returns the adjustment for removing a transaction, the
// exact reverse of its original effect.
func DeleteAdjustment(t *entity.Transaction) Adjustment {
	return Adjustment{AccountID: t.AccountID, Delta: Effect(t).Neg()}
}

// UpdateAdjustments returns the adjustments for changing a transaction's
// amount, account, or both. The transaction type never changes on update.
//
// The original transaction is snapshotted before any field mutation and
// exactly one net adjustment set is produced: the original signed amount is
// reversed on the original account and the new signed amount applied to the
// target account. When the account is unchanged the two collapse into a
// single sign*(new-old) delta. An empty slice means no balance movement.
func UpdateAdjustments(original *entity.Transaction, newAmount decimal.Decimal, newAccountID int64) []Adjustment {
	sign := Sign(original.Type)

	if newAccountID == original.AccountID {
		delta := newAmount.Sub(original.Amount).Mul(sign)
		if delta.IsZero() {
			return nil
		}
		return []Adjustment{{AccountID: original.AccountID, Delta: delta}}
	}

	return []Adjustment{
		{AccountID: original.AccountID, Delta: original.Amount.Mul(sign).Neg()},
		{AccountID: newAccountID, Delta: newAmount.Mul(sign)},
	}
}

// ValidAmount reports whether an amount is acceptable for the ledger:
// non-negative and representable with two fraction digits.
func ValidAmount(amount decimal.Decimal) bool {
	return !amount.IsNegative() && amount.Equal(amount.Round(2))
}
