// Package transaction contains transaction-related use cases.
package transaction

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgertrack/backend/internal/domain/entity"
	domainerror "github.com/ledgertrack/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// ValidateAndNormalize applies the transaction input rules in order:
// a blank description fails first, then a zero amount, then the amount sign
// is derived from the type: income becomes +|amount|, expense becomes
// -|amount|. Callers supply a magnitude plus a type flag; the signed ledger
// value is never taken from the caller directly.
//
// Pure function: no side effects beyond the returned values.
func ValidateAndNormalize(rawAmount decimal.Decimal, transactionType entity.TransactionType, description string) (decimal.Decimal, string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return decimal.Zero, "", domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyDescription,
			"description cannot be empty",
			domainerror.ErrEmptyDescription,
		)
	}
	if len(trimmed) > MaxDescriptionLength {
		return decimal.Zero, "", domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}

	if rawAmount.IsZero() {
		return decimal.Zero, "", domainerror.NewTransactionError(
			domainerror.ErrCodeZeroAmount,
			"amount cannot be zero",
			domainerror.ErrZeroAmount,
		)
	}

	if !isValidTransactionType(transactionType) {
		return decimal.Zero, "", domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	amount := rawAmount.Abs()
	if transactionType == entity.TransactionTypeExpense {
		amount = amount.Neg()
	}

	return amount, trimmed, nil
}

// isValidTransactionType validates the transaction type.
func isValidTransactionType(transactionType entity.TransactionType) bool {
	return transactionType == entity.TransactionTypeExpense || transactionType == entity.TransactionTypeIncome
}
