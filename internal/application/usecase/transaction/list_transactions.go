package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledgertrack/backend/internal/application/adapter"
	"github.com/ledgertrack/backend/internal/domain/entity"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID     uuid.UUID
	CategoryID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	Sort       string
	Page       int
	PageSize   int
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Result *entity.TransactionListResult
}

// ListTransactionsUseCase handles paginated, filtered transaction listings.
type ListTransactionsUseCase struct {
	transactionRepository adapter.TransactionRepository
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactionRepository adapter.TransactionRepository) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactionRepository: transactionRepository,
	}
}

// Execute lists the user's transactions. Unknown sort keys fall back to date
// descending; page and page size are clamped to sane bounds rather than
// rejected.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	page := input.Page
	if page < 1 {
		page = defaultPage
	}
	pageSize := input.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	filter := adapter.TransactionFilter{
		UserID:     input.UserID,
		CategoryID: input.CategoryID,
		StartDate:  input.StartDate,
		EndDate:    input.EndDate,
	}

	result, err := uc.transactionRepository.FindByFilter(ctx, filter, resolveSort(input.Sort), adapter.TransactionPagination{
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return &ListTransactionsOutput{Result: result}, nil
}

// resolveSort maps a raw sort key to a known sort order.
func resolveSort(raw string) adapter.TransactionSort {
	switch adapter.TransactionSort(raw) {
	case adapter.SortDateAsc, adapter.SortDateDesc, adapter.SortAmountAsc, adapter.SortAmountDesc:
		return adapter.TransactionSort(raw)
	default:
		return adapter.SortDateDesc
	}
}
