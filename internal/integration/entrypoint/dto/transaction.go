package dto

import (
	"time"

	"github.com/ledgertrack/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
// Amount is a decimal string so precision survives the wire.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	CategoryID  *string `json:"category_id,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date          *string `json:"date,omitempty"`
	Description   *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount        *string `json:"amount,omitempty"`
	Type          *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
	CategoryID    *string `json:"category_id,omitempty"`
	ClearCategory bool    `json:"clear_category,omitempty"`
}

// TransactionCategoryResponse represents category information in transaction response.
type TransactionCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
	Type  string `json:"type"`
}

// TransactionDateResponse represents the resolved date dimension in a
// transaction response.
type TransactionDateResponse struct {
	Date    string `json:"date"`
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Day     int    `json:"day"`
	Weekday string `json:"weekday"`
	Quarter int    `json:"quarter"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string                       `json:"id"`
	UserID      string                       `json:"user_id"`
	Description string                       `json:"description"`
	Amount      string                       `json:"amount"`
	Type        string                       `json:"type"`
	CategoryID  *string                      `json:"category_id,omitempty"`
	Category    *TransactionCategoryResponse `json:"category,omitempty"`
	Date        *TransactionDateResponse     `json:"date,omitempty"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// TransactionPaginationResponse represents pagination information in API responses.
type TransactionPaginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse         `json:"transactions"`
	Pagination   TransactionPaginationResponse `json:"pagination"`
}

// ToTransactionResponse converts a TransactionWithRefs to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.TransactionWithRefs) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.Transaction.ID.String(),
		UserID:      txn.Transaction.UserID.String(),
		Description: txn.Transaction.Description,
		Amount:      txn.Transaction.Amount.String(),
		Type:        string(txn.Transaction.Type),
		CreatedAt:   txn.Transaction.CreatedAt,
		UpdatedAt:   txn.Transaction.UpdatedAt,
	}

	if txn.Transaction.CategoryID != nil {
		categoryID := txn.Transaction.CategoryID.String()
		response.CategoryID = &categoryID
	}

	if txn.Category != nil {
		response.Category = &TransactionCategoryResponse{
			ID:    txn.Category.ID.String(),
			Name:  txn.Category.Name,
			Color: txn.Category.Color,
			Icon:  txn.Category.Icon,
			Type:  string(txn.Category.Type),
		}
	}

	if txn.Date != nil {
		response.Date = &TransactionDateResponse{
			Date:    txn.Date.FullDate.Format("2006-01-02"),
			Year:    txn.Date.Year,
			Month:   txn.Date.Month,
			Day:     txn.Date.Day,
			Weekday: txn.Date.Weekday,
			Quarter: txn.Date.Quarter,
		}
	}

	return response
}

// ToTransactionListResponse converts a TransactionListResult to a TransactionListResponse DTO.
func ToTransactionListResponse(result *entity.TransactionListResult) TransactionListResponse {
	transactions := make([]TransactionResponse, len(result.Transactions))
	for i, txn := range result.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Pagination: TransactionPaginationResponse{
			Page:       result.Page,
			PageSize:   result.PageSize,
			Total:      result.Total,
			TotalPages: result.TotalPages,
		},
	}
}
