// Package transaction contains transaction-related use cases.
package transaction

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ledgertrack/backend/internal/domain/entity"
	domainerror "github.com/ledgertrack/backend/internal/domain/error"
)

func TestValidateAndNormalize(t *testing.T) {
	tests := []struct {
		name            string
		amount          string
		transactionType entity.TransactionType
		description     string
		expectedAmount  string
		expectedDesc    string
		expectedCode    domainerror.TransactionErrorCode
	}{
		{
			name:            "income keeps positive sign",
			amount:          "100.50",
			transactionType: entity.TransactionTypeIncome,
			description:     "salary",
			expectedAmount:  "100.5",
			expectedDesc:    "salary",
		},
		{
			name:            "expense becomes negative",
			amount:          "42.99",
			transactionType: entity.TransactionTypeExpense,
			description:     "groceries",
			expectedAmount:  "-42.99",
			expectedDesc:    "groceries",
		},
		{
			name:            "negative input for income is flipped positive",
			amount:          "-250",
			transactionType: entity.TransactionTypeIncome,
			description:     "refund",
			expectedAmount:  "250",
			expectedDesc:    "refund",
		},
		{
			name:            "negative input for expense stays negative",
			amount:          "-13.37",
			transactionType: entity.TransactionTypeExpense,
			description:     "coffee",
			expectedAmount:  "-13.37",
			expectedDesc:    "coffee",
		},
		{
			name:            "description is trimmed",
			amount:          "10",
			transactionType: entity.TransactionTypeIncome,
			description:     "  tips  ",
			expectedAmount:  "10",
			expectedDesc:    "tips",
		},
		{
			name:            "empty description is rejected",
			amount:          "10",
			transactionType: entity.TransactionTypeExpense,
			description:     "",
			expectedCode:    domainerror.ErrCodeEmptyDescription,
		},
		{
			name:            "whitespace-only description is rejected",
			amount:          "10",
			transactionType: entity.TransactionTypeExpense,
			description:     "   \t ",
			expectedCode:    domainerror.ErrCodeEmptyDescription,
		},
		{
			name:            "zero amount is rejected",
			amount:          "0",
			transactionType: entity.TransactionTypeIncome,
			description:     "nothing",
			expectedCode:    domainerror.ErrCodeZeroAmount,
		},
		{
			name:            "zero with decimals is rejected",
			amount:          "0.00",
			transactionType: entity.TransactionTypeExpense,
			description:     "nothing",
			expectedCode:    domainerror.ErrCodeZeroAmount,
		},
		{
			name:            "unknown type is rejected",
			amount:          "10",
			transactionType: entity.TransactionType("transfer"),
			description:     "moving money",
			expectedCode:    domainerror.ErrCodeInvalidTransactionType,
		},
		{
			name:            "blank description wins over zero amount",
			amount:          "0",
			transactionType: entity.TransactionTypeExpense,
			description:     " ",
			expectedCode:    domainerror.ErrCodeEmptyDescription,
		},
		{
			name:            "overlong description is rejected",
			amount:          "10",
			transactionType: entity.TransactionTypeExpense,
			description:     strings.Repeat("x", MaxDescriptionLength+1),
			expectedCode:    domainerror.ErrCodeDescriptionTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, description, err := ValidateAndNormalize(
				decimal.RequireFromString(tt.amount),
				tt.transactionType,
				tt.description,
			)

			if tt.expectedCode != "" {
				if err == nil {
					t.Fatalf("expected error with code %s, got nil", tt.expectedCode)
				}
				var txnErr *domainerror.TransactionError
				if !errors.As(err, &txnErr) {
					t.Fatalf("expected TransactionError, got %T", err)
				}
				if txnErr.Code != tt.expectedCode {
					t.Errorf("expected code %s, got %s", tt.expectedCode, txnErr.Code)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if amount.String() != tt.expectedAmount {
				t.Errorf("expected amount %s, got %s", tt.expectedAmount, amount.String())
			}
			if description != tt.expectedDesc {
				t.Errorf("expected description %q, got %q", tt.expectedDesc, description)
			}
		})
	}
}

func TestValidateAndNormalizeSignMatchesType(t *testing.T) {
	// Whatever sign the caller sends, the stored sign follows the type.
	amounts := []string{"1", "-1", "99.99", "-0.01"}

	for _, raw := range amounts {
		income, _, err := ValidateAndNormalize(decimal.RequireFromString(raw), entity.TransactionTypeIncome, "x")
		if err != nil {
			t.Fatalf("income %s: unexpected error: %v", raw, err)
		}
		if income.IsNegative() {
			t.Errorf("income amount %s normalized to negative %s", raw, income)
		}

		expense, _, err := ValidateAndNormalize(decimal.RequireFromString(raw), entity.TransactionTypeExpense, "x")
		if err != nil {
			t.Fatalf("expense %s: unexpected error: %v", raw, err)
		}
		if expense.IsPositive() {
			t.Errorf("expense amount %s normalized to positive %s", raw, expense)
		}
	}
}
