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

// UpdateTransactionInput represents the input for updating a transaction.
// Nil pointer fields keep their current value. ClearCategory detaches the
// category; it wins over CategoryID when both are set.
type UpdateTransactionInput struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	CategoryID    *uuid.UUID
	ClearCategory bool
	Date          *time.Time
	Amount        *decimal.Decimal
	Description   *string
	Type          *entity.TransactionType
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.TransactionWithRefs
}

// UpdateTransactionUseCase handles partial transaction updates.
type UpdateTransactionUseCase struct {
	transactionRepository   adapter.TransactionRepository
	categoryRepository      adapter.CategoryRepository
	dateDimensionRepository adapter.DateDimensionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(
	transactionRepository adapter.TransactionRepository,
	categoryRepository adapter.CategoryRepository,
	dateDimensionRepository adapter.DateDimensionRepository,
) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepository:   transactionRepository,
		categoryRepository:      categoryRepository,
		dateDimensionRepository: dateDimensionRepository,
	}
}

// Execute loads the owner's transaction, merges the requested changes,
// re-runs validation and re-resolves references, then persists.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepository.FindByIDAndUser(ctx, input.ID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	transaction := existing.Transaction
	category := existing.Category
	dateDimension := existing.Date

	transactionType := transaction.Type
	if input.Type != nil {
		transactionType = *input.Type
	}
	// Re-normalize from the stored magnitude so a type flip alone still
	// yields the right sign.
	amount := transaction.Amount
	if input.Amount != nil {
		amount = *input.Amount
	}
	description := transaction.Description
	if input.Description != nil {
		description = *input.Description
	}

	amount, description, err = ValidateAndNormalize(amount, transactionType, description)
	if err != nil {
		return nil, err
	}

	switch {
	case input.ClearCategory:
		transaction.CategoryID = nil
		category = nil
	case input.CategoryID != nil:
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
		transaction.CategoryID = input.CategoryID
	}

	if input.Date != nil {
		dateDimension, err = uc.dateDimensionRepository.GetOrCreate(ctx, *input.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve date dimension: %w", err)
		}
		transaction.DateID = dateDimension.ID
	}

	transaction.Amount = amount
	transaction.Description = description
	transaction.Type = transactionType
	transaction.UpdatedAt = time.Now().UTC()

	if err := uc.transactionRepository.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{
		Transaction: &entity.TransactionWithRefs{
			Transaction: transaction,
			Category:    category,
			Date:        dateDimension,
		},
	}, nil
}
