// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction represents a single ledger entry. Amount is signed: positive
// for income, negative for expenses. The sign is derived from Type at
// validation time, so sign and type never disagree in storage.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CategoryID  *uuid.UUID // nil when uncategorized or category was deleted
	DateID      uuid.UUID
	Amount      decimal.Decimal
	Description string
	Type        TransactionType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	categoryID *uuid.UUID,
	dateID uuid.UUID,
	amount decimal.Decimal,
	description string,
	transactionType TransactionType,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		CategoryID:  categoryID,
		DateID:      dateID,
		Amount:      amount,
		Description: description,
		Type:        transactionType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// TransactionWithRefs is a transaction joined with its referenced rows.
type TransactionWithRefs struct {
	Transaction *Transaction
	Category    *Category // nil when uncategorized
	Date        *DateDimension
}

// TransactionListResult represents one page of a transaction listing.
type TransactionListResult struct {
	Transactions []*TransactionWithRefs
	Total        int64
	Page         int
	PageSize     int
	TotalPages   int
}

// Summary holds the aggregate totals for one user's ledger. Expenses is the
// absolute value of the negative amounts, so Balance = Income - Expenses.
type Summary struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// MonthlyTotal holds aggregate totals for one calendar month.
type MonthlyTotal struct {
	Year     int
	Month    int
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
}

// CategoryTotal holds aggregate totals for one category. CategoryID is nil
// for the uncategorized bucket.
type CategoryTotal struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Total        decimal.Decimal
	Count        int64
}
