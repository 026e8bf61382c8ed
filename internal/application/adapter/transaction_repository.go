// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ledgertrack/backend/internal/domain/entity"
)

// TransactionSort identifies a sort order for transaction listings. The
// values match the query-string keys the API accepts.
type TransactionSort string

const (
	SortDateAsc    TransactionSort = "date"
	SortDateDesc   TransactionSort = "-date"
	SortAmountAsc  TransactionSort = "amount"
	SortAmountDesc TransactionSort = "-amount"
)

// TransactionFilter defines filter options for listing transactions.
// UserID is mandatory: every query is owner-scoped.
type TransactionFilter struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// TransactionPagination defines pagination options.
type TransactionPagination struct {
	Page     int
	PageSize int
}

// TransactionRepository defines the interface for transaction persistence
// operations. Lookups by id are scoped to the owning user; another user's
// row is indistinguishable from a missing one.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByIDAndUser retrieves a transaction with its category and date
	// dimension, scoped to the owner.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithRefs, error)

	// FindByFilter retrieves one page of transactions matching the filter,
	// sorted by the given key (unknown keys fall back to date descending).
	FindByFilter(ctx context.Context, filter TransactionFilter, sort TransactionSort, pagination TransactionPagination) (*entity.TransactionListResult, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// DeleteByIDAndUser removes a transaction, scoped to the owner.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
}
