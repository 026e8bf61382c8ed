package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgertrack/backend/internal/application/adapter"
	"github.com/ledgertrack/backend/internal/domain/entity"
	domainerror "github.com/ledgertrack/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for creating a transaction.
// Amount carries the magnitude; the stored sign is derived from Type.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	CategoryID  *uuid.UUID
	Date        time.Time
	Amount      decimal.Decimal
	Description string
	Type        entity.TransactionType
}

// CreateTransactionOutput represents the output of creating a transaction.
type CreateTransactionOutput struct {
	Transaction *entity.TransactionWithRefs
}

// CreateTransactionUseCase handles transaction creation.
type CreateTransactionUseCase struct {
	transactionRepository   adapter.TransactionRepository
	categoryRepository      adapter.CategoryRepository
	dateDimensionRepository adapter.DateDimensionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	transactionRepository adapter.TransactionRepository,
	categoryRepository adapter.CategoryRepository,
	dateDimensionRepository adapter.DateDimensionRepository,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepository:   transactionRepository,
		categoryRepository:      categoryRepository,
		dateDimensionRepository: dateDimensionRepository,
	}
}

// Execute validates the input, resolves the category and date dimension,
// and persists the transaction.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	amount, description, err := ValidateAndNormalize(input.Amount, input.Type, input.Description)
	if err != nil {
		return nil, err
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	var category *entity.Category
	if input.CategoryID != nil {
		category, err = uc.categoryRepository.FindByIDAndUser(ctx, *input.CategoryID, input.UserID)
		if err != nil {
			if errors.Is(err, domainerror.ErrCategoryNotFound) {
				return nil, domainerror.NewTransactionError(
					domainerror.ErrCodeTxnCategoryNotFound,
					"category not found",
					domainerror.ErrCategoryNotUsable,
				)
			}
			return nil, fmt.Errorf("failed to find category: %w", err)
		}
	}

	dateDimension, err := uc.dateDimensionRepository.GetOrCreate(ctx, input.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve date dimension: %w", err)
	}

	transaction := entity.NewTransaction(
		input.UserID,
		input.CategoryID,
		dateDimension.ID,
		amount,
		description,
		input.Type,
	)

	if err := uc.transactionRepository.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{
		Transaction: &entity.TransactionWithRefs{
			Transaction: transaction,
			Category:    category,
			Date:        dateDimension,
		},
	}, nil
}
