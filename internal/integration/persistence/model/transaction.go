package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgertrack/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
// Deleting a category sets CategoryID to NULL; deleting a user removes the
// row. Date dimension rows are never deleted while referenced.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID      `gorm:"type:uuid;index"`
	DateID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Description string          `gorm:"type:varchar(255);not null"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	// Relationships (not loaded by default, use Preload or joins)
	User     *UserModel          `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Category *CategoryModel      `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:SET NULL"`
	Date     *DateDimensionModel `gorm:"foreignKey:DateID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		CategoryID:  m.CategoryID,
		DateID:      m.DateID,
		Amount:      m.Amount,
		Description: m.Description,
		Type:        entity.TransactionType(m.Type),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ToEntityWithRefs converts a TransactionModel with its preloaded Category
// and Date to a TransactionWithRefs entity.
func (m *TransactionModel) ToEntityWithRefs() *entity.TransactionWithRefs {
	result := &entity.TransactionWithRefs{
		Transaction: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}
	if m.Date != nil {
		result.Date = m.Date.ToEntity()
	}

	return result
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		CategoryID:  transaction.CategoryID,
		DateID:      transaction.DateID,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Type:        string(transaction.Type),
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
