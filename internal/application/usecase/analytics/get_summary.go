// Package analytics contains reporting use cases over a user's ledger.
package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgertrack/backend/internal/application/adapter"
	"github.com/ledgertrack/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the ledger summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the output of the ledger summary.
type GetSummaryOutput struct {
	Summary *entity.Summary
}

// GetSummaryUseCase computes total income, expenses and balance for one user.
type GetSummaryUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(analyticsRepo adapter.AnalyticsRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute computes the summary. An empty ledger yields all-zero totals.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	summary, err := uc.analyticsRepo.Summarize(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	return &GetSummaryOutput{Summary: summary}, nil
}
