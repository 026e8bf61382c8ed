package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ledgertrack/backend/internal/application/adapter"
	"github.com/ledgertrack/backend/internal/domain/entity"
	domainerror "github.com/ledgertrack/backend/internal/domain/error"
)

// GetTransactionInput represents the input for fetching a single transaction.
type GetTransactionInput struct {
	ID     uuid.UUID
	UserID uuid.UUID
}

// GetTransactionOutput represents the output of fetching a single transaction.
type GetTransactionOutput struct {
	Transaction *entity.TransactionWithRefs
}

// GetTransactionUseCase handles single transaction retrieval.
type GetTransactionUseCase struct {
	transactionRepository adapter.TransactionRepository
}

// NewGetTransactionUseCase creates a new GetTransactionUseCase instance.
func NewGetTransactionUseCase(transactionRepository adapter.TransactionRepository) *GetTransactionUseCase {
	return &GetTransactionUseCase{
		transactionRepository: transactionRepository,
	}
}

// Execute fetches the owner's transaction with its category and date.
func (uc *GetTransactionUseCase) Execute(ctx context.Context, input GetTransactionInput) (*GetTransactionOutput, error) {
	transaction, err := uc.transactionRepository.FindByIDAndUser(ctx, input.ID, input.UserID)
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

	return &GetTransactionOutput{Transaction: transaction}, nil
}
