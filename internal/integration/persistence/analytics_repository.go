package persistence

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/ledgertrack/backend/internal/application/adapter"
	"github.com/ledgertrack/backend/internal/domain/entity"
)

// analyticsRepository implements the adapter.AnalyticsRepository interface.
// Aggregations group by the date dimension's year and month columns instead
// of truncating timestamps, so the same SQL runs on postgres and sqlite.
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance.
func NewAnalyticsRepository(db *gorm.DB) adapter.AnalyticsRepository {
	return &analyticsRepository{
		db: db,
	}
}

// Summarize returns income, expense and balance totals for one user.
func (r *analyticsRepository) Summarize(ctx context.Context, userID uuid.UUID) (*entity.Summary, error) {
	var result struct {
		Income   decimal.Decimal `gorm:"column:income"`
		Expenses decimal.Decimal `gorm:"column:expenses"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions").
		Select(`
			COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0) as expenses`).
		Where("user_id = ?", userID).
		Scan(&result).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary: %w", err)
	}

	return &entity.Summary{
		Income:   result.Income,
		Expenses: result.Expenses,
		Balance:  result.Income.Sub(result.Expenses),
	}, nil
}

// MonthlyTotals returns per-month totals, ordered chronologically.
func (r *analyticsRepository) MonthlyTotals(ctx context.Context, userID uuid.UUID, year *int) ([]*entity.MonthlyTotal, error) {
	var results []struct {
		Year     int             `gorm:"column:year"`
		Month    int             `gorm:"column:month"`
		Income   decimal.Decimal `gorm:"column:income"`
		Expenses decimal.Decimal `gorm:"column:expenses"`
	}

	query := r.db.WithContext(ctx).
		Table("transactions").
		Select(`
			date_dimensions.year as year,
			date_dimensions.month as month,
			COALESCE(SUM(CASE WHEN amount > 0 THEN amount ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE 0 END), 0) as expenses`).
		Joins("JOIN date_dimensions ON date_dimensions.id = transactions.date_id").
		Where("transactions.user_id = ?", userID)

	if year != nil {
		query = query.Where("date_dimensions.year = ?", *year)
	}

	err := query.
		Group("date_dimensions.year, date_dimensions.month").
		Order("year ASC, month ASC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly totals: %w", err)
	}

	months := make([]*entity.MonthlyTotal, len(results))
	for i, res := range results {
		months[i] = &entity.MonthlyTotal{
			Year:     res.Year,
			Month:    res.Month,
			Income:   res.Income,
			Expenses: res.Expenses,
			Net:      res.Income.Sub(res.Expenses),
		}
	}

	return months, nil
}

// CategoryTotals returns per-category totals for one transaction type.
// Uncategorized transactions group under a nil category id.
func (r *analyticsRepository) CategoryTotals(ctx context.Context, userID uuid.UUID, transactionType entity.TransactionType) ([]*entity.CategoryTotal, error) {
	var results []struct {
		CategoryID   *uuid.UUID      `gorm:"column:category_id"`
		CategoryName *string         `gorm:"column:category_name"`
		Total        decimal.Decimal `gorm:"column:total"`
		Count        int64           `gorm:"column:count"`
	}

	err := r.db.WithContext(ctx).
		Table("transactions").
		Select(`
			transactions.category_id as category_id,
			categories.name as category_name,
			COALESCE(SUM(CASE WHEN amount < 0 THEN -amount ELSE amount END), 0) as total,
			COUNT(*) as count`).
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ? AND transactions.type = ?", userID, string(transactionType)).
		Group("transactions.category_id, categories.name").
		Order("total DESC").
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute category totals: %w", err)
	}

	categories := make([]*entity.CategoryTotal, len(results))
	for i, res := range results {
		name := "Uncategorized"
		if res.CategoryName != nil {
			name = *res.CategoryName
		}
		categories[i] = &entity.CategoryTotal{
			CategoryID:   res.CategoryID,
			CategoryName: name,
			Total:        res.Total,
			Count:        res.Count,
		}
	}

	return categories, nil
}
