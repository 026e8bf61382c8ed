package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgertrack/backend/internal/application/adapter"
	"github.com/ledgertrack/backend/internal/domain/entity"
)

// GetMonthlyBreakdownInput represents the input for the monthly breakdown.
// Year is optional; when nil every month with activity is included.
type GetMonthlyBreakdownInput struct {
	UserID uuid.UUID
	Year   *int
}

// GetMonthlyBreakdownOutput represents the output of the monthly breakdown.
type GetMonthlyBreakdownOutput struct {
	Months []*entity.MonthlyTotal
}

// GetMonthlyBreakdownUseCase computes per-month totals via the date dimension.
type GetMonthlyBreakdownUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
}

// NewGetMonthlyBreakdownUseCase creates a new GetMonthlyBreakdownUseCase instance.
func NewGetMonthlyBreakdownUseCase(analyticsRepo adapter.AnalyticsRepository) *GetMonthlyBreakdownUseCase {
	return &GetMonthlyBreakdownUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute computes the breakdown, ordered chronologically. Months with no
// transactions are omitted rather than zero-filled.
func (uc *GetMonthlyBreakdownUseCase) Execute(ctx context.Context, input GetMonthlyBreakdownInput) (*GetMonthlyBreakdownOutput, error) {
	months, err := uc.analyticsRepo.MonthlyTotals(ctx, input.UserID, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly breakdown: %w", err)
	}

	return &GetMonthlyBreakdownOutput{Months: months}, nil
}
