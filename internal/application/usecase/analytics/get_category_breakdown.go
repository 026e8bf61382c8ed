package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgertrack/backend/internal/application/adapter"
	"github.com/ledgertrack/backend/internal/domain/entity"
	domainerror "github.com/ledgertrack/backend/internal/domain/error"
)

// GetCategoryBreakdownInput represents the input for the category breakdown.
// Type defaults to expense when empty.
type GetCategoryBreakdownInput struct {
	UserID uuid.UUID
	Type   entity.TransactionType
}

// GetCategoryBreakdownOutput represents the output of the category breakdown.
type GetCategoryBreakdownOutput struct {
	Categories []*entity.CategoryTotal
}

// GetCategoryBreakdownUseCase computes per-category totals for one
// transaction type. Uncategorized transactions form their own bucket.
type GetCategoryBreakdownUseCase struct {
	analyticsRepo adapter.AnalyticsRepository
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(analyticsRepo adapter.AnalyticsRepository) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		analyticsRepo: analyticsRepo,
	}
}

// Execute computes the breakdown, largest absolute total first.
func (uc *GetCategoryBreakdownUseCase) Execute(ctx context.Context, input GetCategoryBreakdownInput) (*GetCategoryBreakdownOutput, error) {
	transactionType := input.Type
	if transactionType == "" {
		transactionType = entity.TransactionTypeExpense
	}
	if transactionType != entity.TransactionTypeExpense && transactionType != entity.TransactionTypeIncome {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}

	categories, err := uc.analyticsRepo.CategoryTotals(ctx, input.UserID, transactionType)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category breakdown: %w", err)
	}

	return &GetCategoryBreakdownOutput{Categories: categories}, nil
}
