// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/ledgertrack/backend/internal/domain/entity"
)

// DateDimensionRepository resolves calendar dates to their canonical
// dimension rows.
type DateDimensionRepository interface {
	// GetOrCreate looks up the dimension row for the given calendar date,
	// inserting it on first reference. Safe to call concurrently for the
	// same date: a losing insert re-reads the winner's row, so exactly one
	// row per date ever exists.
	GetOrCreate(ctx context.Context, date time.Time) (*entity.DateDimension, error)
}
