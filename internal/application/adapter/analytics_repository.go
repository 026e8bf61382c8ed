// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/ledgertrack/backend/internal/domain/entity"
)

// AnalyticsRepository computes aggregate totals over a single user's ledger.
// Every query is scoped to the given user; there is no global aggregation.
type AnalyticsRepository interface {
	// Summarize returns income, expense and balance totals. A ledger with no
	// transactions yields zeros, not an error.
	Summarize(ctx context.Context, userID uuid.UUID) (*entity.Summary, error)

	// MonthlyTotals returns per-month totals via the date dimension, ordered
	// chronologically. When year is non-nil only that year is included.
	MonthlyTotals(ctx context.Context, userID uuid.UUID, year *int) ([]*entity.MonthlyTotal, error)

	// CategoryTotals returns per-category totals for the given transaction
	// type. Uncategorized transactions appear as a bucket with a nil
	// category id. Ordered by absolute total, largest first.
	CategoryTotals(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType) ([]*entity.CategoryTotal, error)
}
