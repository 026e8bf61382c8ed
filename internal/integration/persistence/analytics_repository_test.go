package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgertrack/backend/internal/domain/entity"
)

func TestAnalyticsRepository_Summarize(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	t.Run("totals income, expenses and balance", func(t *testing.T) {
		owner := seedUser(t, db)
		seedTransaction(t, db, owner, nil, date(2024, time.January, 5), "3000.00", entity.TransactionTypeIncome)
		seedTransaction(t, db, owner, nil, date(2024, time.January, 10), "500.00", entity.TransactionTypeExpense)
		seedTransaction(t, db, owner, nil, date(2024, time.January, 20), "250.50", entity.TransactionTypeExpense)

		summary, err := repo.Summarize(ctx, owner)
		if err != nil {
			t.Fatalf("Summarize failed: %v", err)
		}

		if !summary.Income.Equal(decimal.RequireFromString("3000.00")) {
			t.Errorf("expected income 3000.00, got %s", summary.Income)
		}
		if !summary.Expenses.Equal(decimal.RequireFromString("750.50")) {
			t.Errorf("expected expenses 750.50, got %s", summary.Expenses)
		}
		if !summary.Balance.Equal(decimal.RequireFromString("2249.50")) {
			t.Errorf("expected balance 2249.50, got %s", summary.Balance)
		}
	})

	t.Run("empty ledger yields zeros", func(t *testing.T) {
		owner := seedUser(t, db)

		summary, err := repo.Summarize(ctx, owner)
		if err != nil {
			t.Fatalf("Summarize failed: %v", err)
		}

		if !summary.Income.IsZero() || !summary.Expenses.IsZero() || !summary.Balance.IsZero() {
			t.Errorf("expected all zeros, got income=%s expenses=%s balance=%s",
				summary.Income, summary.Expenses, summary.Balance)
		}
	})

	t.Run("ignores other users' transactions", func(t *testing.T) {
		owner := seedUser(t, db)
		other := seedUser(t, db)
		seedTransaction(t, db, owner, nil, date(2024, time.May, 1), "100.00", entity.TransactionTypeIncome)
		seedTransaction(t, db, other, nil, date(2024, time.May, 1), "9999.00", entity.TransactionTypeIncome)

		summary, err := repo.Summarize(ctx, owner)
		if err != nil {
			t.Fatalf("Summarize failed: %v", err)
		}
		if !summary.Income.Equal(decimal.RequireFromString("100.00")) {
			t.Errorf("expected income 100.00, got %s", summary.Income)
		}
	})
}

func TestAnalyticsRepository_MonthlyTotals(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db)
	seedTransaction(t, db, owner, nil, date(2023, time.December, 20), "80.00", entity.TransactionTypeExpense)
	seedTransaction(t, db, owner, nil, date(2024, time.January, 5), "3000.00", entity.TransactionTypeIncome)
	seedTransaction(t, db, owner, nil, date(2024, time.January, 15), "400.00", entity.TransactionTypeExpense)
	seedTransaction(t, db, owner, nil, date(2024, time.March, 2), "120.00", entity.TransactionTypeExpense)

	t.Run("groups by month in chronological order", func(t *testing.T) {
		months, err := repo.MonthlyTotals(ctx, owner, nil)
		if err != nil {
			t.Fatalf("MonthlyTotals failed: %v", err)
		}

		if len(months) != 3 {
			t.Fatalf("expected 3 months, got %d", len(months))
		}

		if months[0].Year != 2023 || months[0].Month != 12 {
			t.Errorf("expected 2023-12 first, got %d-%d", months[0].Year, months[0].Month)
		}
		if months[1].Year != 2024 || months[1].Month != 1 {
			t.Errorf("expected 2024-01 second, got %d-%d", months[1].Year, months[1].Month)
		}

		january := months[1]
		if !january.Income.Equal(decimal.RequireFromString("3000.00")) {
			t.Errorf("expected january income 3000.00, got %s", january.Income)
		}
		if !january.Expenses.Equal(decimal.RequireFromString("400.00")) {
			t.Errorf("expected january expenses 400.00, got %s", january.Expenses)
		}
		if !january.Net.Equal(decimal.RequireFromString("2600.00")) {
			t.Errorf("expected january net 2600.00, got %s", january.Net)
		}
	})

	t.Run("year filter limits the range", func(t *testing.T) {
		year := 2024
		months, err := repo.MonthlyTotals(ctx, owner, &year)
		if err != nil {
			t.Fatalf("MonthlyTotals failed: %v", err)
		}

		if len(months) != 2 {
			t.Fatalf("expected 2 months in 2024, got %d", len(months))
		}
		for _, m := range months {
			if m.Year != 2024 {
				t.Errorf("expected only 2024, got %d", m.Year)
			}
		}
	})
}

func TestAnalyticsRepository_CategoryTotals(t *testing.T) {
	db := newTestDB(t)
	repo := NewAnalyticsRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db)
	groceries := seedCategory(t, db, owner, "Groceries", entity.CategoryTypeExpense)
	transport := seedCategory(t, db, owner, "Transport", entity.CategoryTypeExpense)

	seedTransaction(t, db, owner, &groceries.ID, date(2024, time.June, 1), "200.00", entity.TransactionTypeExpense)
	seedTransaction(t, db, owner, &groceries.ID, date(2024, time.June, 8), "150.00", entity.TransactionTypeExpense)
	seedTransaction(t, db, owner, &transport.ID, date(2024, time.June, 3), "60.00", entity.TransactionTypeExpense)
	seedTransaction(t, db, owner, nil, date(2024, time.June, 12), "40.00", entity.TransactionTypeExpense)
	seedTransaction(t, db, owner, nil, date(2024, time.June, 30), "5000.00", entity.TransactionTypeIncome)

	totals, err := repo.CategoryTotals(ctx, owner, entity.TransactionTypeExpense)
	if err != nil {
		t.Fatalf("CategoryTotals failed: %v", err)
	}

	if len(totals) != 3 {
		t.Fatalf("expected 3 buckets, got %d", len(totals))
	}

	// Ordered by absolute total, largest first.
	if totals[0].CategoryName != "Groceries" {
		t.Errorf("expected Groceries first, got %s", totals[0].CategoryName)
	}
	if !totals[0].Total.Equal(decimal.RequireFromString("350.00")) {
		t.Errorf("expected groceries total 350.00, got %s", totals[0].Total)
	}
	if totals[0].Count != 2 {
		t.Errorf("expected groceries count 2, got %d", totals[0].Count)
	}

	if totals[1].CategoryName != "Transport" {
		t.Errorf("expected Transport second, got %s", totals[1].CategoryName)
	}

	// The income transaction is excluded; uncategorized expenses form
	// their own bucket with a nil category id.
	uncategorized := totals[2]
	if uncategorized.CategoryID != nil {
		t.Errorf("expected nil category id, got %v", uncategorized.CategoryID)
	}
	if uncategorized.CategoryName != "Uncategorized" {
		t.Errorf("expected Uncategorized bucket, got %s", uncategorized.CategoryName)
	}
	if !uncategorized.Total.Equal(decimal.RequireFromString("40.00")) {
		t.Errorf("expected uncategorized total 40.00, got %s", uncategorized.Total)
	}
}
