package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ledgertrack/backend/internal/application/adapter"
	"github.com/ledgertrack/backend/internal/domain/entity"
	domainerror "github.com/ledgertrack/backend/internal/domain/error"
	"github.com/ledgertrack/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).Create(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByIDAndUser retrieves a transaction with its category and date
// dimension, scoped to the owner.
func (r *transactionRepository) FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.TransactionWithRefs, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Date").
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntityWithRefs(), nil
}

// FindByFilter retrieves one page of transactions matching the filter.
// Date ordering and range filters go through the date_dimensions join since
// transactions only carry a date id.
func (r *transactionRepository) FindByFilter(ctx context.Context, filter adapter.TransactionFilter, sort adapter.TransactionSort, pagination adapter.TransactionPagination) (*entity.TransactionListResult, error) {
	query := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Joins("JOIN date_dimensions ON date_dimensions.id = transactions.date_id").
		Where("transactions.user_id = ?", filter.UserID)

	if filter.CategoryID != nil {
		query = query.Where("transactions.category_id = ?", *filter.CategoryID)
	}
	if filter.StartDate != nil {
		query = query.Where("date_dimensions.full_date >= ?", entity.TruncateToDate(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where("date_dimensions.full_date <= ?", entity.TruncateToDate(*filter.EndDate))
	}

	// Get total count
	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (pagination.Page - 1) * pagination.PageSize
	totalPages := int((total + int64(pagination.PageSize) - 1) / int64(pagination.PageSize))
	if totalPages == 0 {
		totalPages = 1
	}

	var transactionModels []model.TransactionModel
	result := query.
		Preload("Category").
		Preload("Date").
		Order(orderClause(sort)).
		Offset(offset).
		Limit(pagination.PageSize).
		Find(&transactionModels)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.TransactionWithRefs, len(transactionModels))
	for i, tm := range transactionModels {
		transactions[i] = tm.ToEntityWithRefs()
	}

	return &entity.TransactionListResult{
		Transactions: transactions,
		Total:        total,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
		TotalPages:   totalPages,
	}, nil
}

// orderClause maps a sort key to its SQL ordering. created_at breaks ties so
// pages stay stable across requests.
func orderClause(sort adapter.TransactionSort) string {
	switch sort {
	case adapter.SortDateAsc:
		return "date_dimensions.full_date ASC, transactions.created_at ASC"
	case adapter.SortAmountAsc:
		return "transactions.amount ASC, transactions.created_at ASC"
	case adapter.SortAmountDesc:
		return "transactions.amount DESC, transactions.created_at DESC"
	default:
		return "date_dimensions.full_date DESC, transactions.created_at DESC"
	}
}

// Update updates an existing transaction in the database.
func (r *transactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	transactionModel := model.TransactionFromEntity(transaction)
	result := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where("id = ? AND user_id = ?", transaction.ID, transaction.UserID).
		Select("CategoryID", "DateID", "Amount", "Description", "Type", "UpdatedAt").
		Updates(transactionModel)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// DeleteByIDAndUser removes a transaction, scoped to the owner.
func (r *transactionRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.TransactionModel{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}
