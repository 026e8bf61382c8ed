package dto

import (
	"github.com/ledgertrack/backend/internal/domain/entity"
)

// SummaryResponse represents the ledger summary in API responses.
// Expenses is reported as a positive magnitude.
type SummaryResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// MonthlyTotalResponse represents one month's totals in API responses.
type MonthlyTotalResponse struct {
	Year     int    `json:"year"`
	Month    int    `json:"month"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Net      string `json:"net"`
}

// MonthlyBreakdownResponse represents the monthly breakdown in API responses.
type MonthlyBreakdownResponse struct {
	Months []MonthlyTotalResponse `json:"months"`
}

// CategoryTotalResponse represents one category's totals in API responses.
// CategoryID is null for the uncategorized bucket.
type CategoryTotalResponse struct {
	CategoryID   *string `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Total        string  `json:"total"`
	Count        int64   `json:"count"`
}

// CategoryBreakdownResponse represents the category breakdown in API responses.
type CategoryBreakdownResponse struct {
	Type       string                  `json:"type"`
	Categories []CategoryTotalResponse `json:"categories"`
}

// ToSummaryResponse converts a domain Summary to a SummaryResponse DTO.
func ToSummaryResponse(summary *entity.Summary) SummaryResponse {
	return SummaryResponse{
		Income:   summary.Income.String(),
		Expenses: summary.Expenses.String(),
		Balance:  summary.Balance.String(),
	}
}

// ToMonthlyBreakdownResponse converts monthly totals to a MonthlyBreakdownResponse DTO.
func ToMonthlyBreakdownResponse(months []*entity.MonthlyTotal) MonthlyBreakdownResponse {
	responses := make([]MonthlyTotalResponse, len(months))
	for i, month := range months {
		responses[i] = MonthlyTotalResponse{
			Year:     month.Year,
			Month:    month.Month,
			Income:   month.Income.String(),
			Expenses: month.Expenses.String(),
			Net:      month.Net.String(),
		}
	}
	return MonthlyBreakdownResponse{Months: responses}
}

// ToCategoryBreakdownResponse converts category totals to a CategoryBreakdownResponse DTO.
func ToCategoryBreakdownResponse(transactionType entity.TransactionType, categories []*entity.CategoryTotal) CategoryBreakdownResponse {
	responses := make([]CategoryTotalResponse, len(categories))
	for i, category := range categories {
		responses[i] = CategoryTotalResponse{
			CategoryName: category.CategoryName,
			Total:        category.Total.String(),
			Count:        category.Count,
		}
		if category.CategoryID != nil {
			id := category.CategoryID.String()
			responses[i].CategoryID = &id
		}
	}
	return CategoryBreakdownResponse{
		Type:       string(transactionType),
		Categories: responses,
	}
}
