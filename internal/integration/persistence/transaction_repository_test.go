package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgertrack/backend/internal/application/adapter"
	"github.com/ledgertrack/backend/internal/domain/entity"
	domainerror "github.com/ledgertrack/backend/internal/domain/error"
)

func TestTransactionRepository_FindByIDAndUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db)
	other := seedUser(t, db)
	groceries := seedCategory(t, db, owner, "Groceries", entity.CategoryTypeExpense)
	txn := seedTransaction(t, db, owner, &groceries.ID, date(2024, time.March, 15), "42.50", entity.TransactionTypeExpense)

	t.Run("owner gets transaction with references", func(t *testing.T) {
		found, err := repo.FindByIDAndUser(ctx, txn.ID, owner)
		if err != nil {
			t.Fatalf("FindByIDAndUser failed: %v", err)
		}

		if !found.Transaction.Amount.Equal(decimal.RequireFromString("-42.50")) {
			t.Errorf("expected amount -42.50, got %s", found.Transaction.Amount)
		}
		if found.Category == nil || found.Category.Name != "Groceries" {
			t.Errorf("expected joined category Groceries, got %+v", found.Category)
		}
		if found.Date == nil || found.Date.Weekday != "Friday" {
			t.Errorf("expected joined date with weekday Friday, got %+v", found.Date)
		}
	})

	t.Run("another user gets not found", func(t *testing.T) {
		_, err := repo.FindByIDAndUser(ctx, txn.ID, other)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("unknown id gets not found", func(t *testing.T) {
		_, err := repo.FindByIDAndUser(ctx, uuid.New(), owner)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestTransactionRepository_FindByFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db)
	other := seedUser(t, db)
	groceries := seedCategory(t, db, owner, "Groceries", entity.CategoryTypeExpense)

	seedTransaction(t, db, owner, &groceries.ID, date(2024, time.January, 10), "50.00", entity.TransactionTypeExpense)
	seedTransaction(t, db, owner, nil, date(2024, time.February, 5), "3000.00", entity.TransactionTypeIncome)
	seedTransaction(t, db, owner, &groceries.ID, date(2024, time.March, 20), "75.25", entity.TransactionTypeExpense)
	seedTransaction(t, db, other, nil, date(2024, time.February, 1), "99.00", entity.TransactionTypeExpense)

	page := adapter.TransactionPagination{Page: 1, PageSize: 20}

	t.Run("returns only the owner's transactions", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: owner}, adapter.SortDateDesc, page)
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 3 {
			t.Errorf("expected total 3, got %d", result.Total)
		}
		for _, txn := range result.Transactions {
			if txn.Transaction.UserID != owner {
				t.Errorf("got transaction owned by %s", txn.Transaction.UserID)
			}
		}
	})

	t.Run("date descending is the default order", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: owner}, adapter.SortDateDesc, page)
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}

		var previous *entity.DateDimension
		for _, txn := range result.Transactions {
			if previous != nil && txn.Date.FullDate.After(previous.FullDate) {
				t.Errorf("dates not descending: %s after %s", txn.Date.FullDate, previous.FullDate)
			}
			previous = txn.Date
		}
	})

	t.Run("amount ascending sorts signed values", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: owner}, adapter.SortAmountAsc, page)
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}

		for i := 1; i < len(result.Transactions); i++ {
			prev := result.Transactions[i-1].Transaction.Amount
			curr := result.Transactions[i].Transaction.Amount
			if curr.LessThan(prev) {
				t.Errorf("amounts not ascending: %s before %s", prev, curr)
			}
		}
	})

	t.Run("filters by category", func(t *testing.T) {
		filter := adapter.TransactionFilter{UserID: owner, CategoryID: &groceries.ID}
		result, err := repo.FindByFilter(ctx, filter, adapter.SortDateDesc, page)
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 2 {
			t.Errorf("expected 2 grocery transactions, got %d", result.Total)
		}
	})

	t.Run("filters by date range through the dimension join", func(t *testing.T) {
		start := date(2024, time.February, 1)
		end := date(2024, time.February, 28)
		filter := adapter.TransactionFilter{UserID: owner, StartDate: &start, EndDate: &end}

		result, err := repo.FindByFilter(ctx, filter, adapter.SortDateDesc, page)
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 1 {
			t.Fatalf("expected 1 transaction in February, got %d", result.Total)
		}
		if result.Transactions[0].Date.Month != 2 {
			t.Errorf("expected February transaction, got month %d", result.Transactions[0].Date.Month)
		}
	})

	t.Run("paginates and reports total pages", func(t *testing.T) {
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: owner}, adapter.SortDateDesc, adapter.TransactionPagination{Page: 2, PageSize: 2})
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 3 {
			t.Errorf("expected total 3, got %d", result.Total)
		}
		if result.TotalPages != 2 {
			t.Errorf("expected 2 pages, got %d", result.TotalPages)
		}
		if len(result.Transactions) != 1 {
			t.Errorf("expected 1 transaction on page 2, got %d", len(result.Transactions))
		}
	})

	t.Run("empty result is a page with zero total", func(t *testing.T) {
		empty := seedUser(t, db)
		result, err := repo.FindByFilter(ctx, adapter.TransactionFilter{UserID: empty}, adapter.SortDateDesc, page)
		if err != nil {
			t.Fatalf("FindByFilter failed: %v", err)
		}
		if result.Total != 0 {
			t.Errorf("expected total 0, got %d", result.Total)
		}
		if result.TotalPages != 1 {
			t.Errorf("expected 1 page for empty result, got %d", result.TotalPages)
		}
		if len(result.Transactions) != 0 {
			t.Errorf("expected no transactions, got %d", len(result.Transactions))
		}
	})
}

func TestTransactionRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db)
	other := seedUser(t, db)
	groceries := seedCategory(t, db, owner, "Groceries", entity.CategoryTypeExpense)
	txn := seedTransaction(t, db, owner, &groceries.ID, date(2024, time.March, 15), "42.50", entity.TransactionTypeExpense)

	t.Run("updates fields and clears category reference", func(t *testing.T) {
		txn.CategoryID = nil
		txn.Description = "market run"
		txn.UpdatedAt = time.Now().UTC()
		if err := repo.Update(ctx, txn); err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		found, err := repo.FindByIDAndUser(ctx, txn.ID, owner)
		if err != nil {
			t.Fatalf("FindByIDAndUser failed: %v", err)
		}
		if found.Transaction.CategoryID != nil {
			t.Errorf("expected nil category reference, got %v", found.Transaction.CategoryID)
		}
		if found.Transaction.Description != "market run" {
			t.Errorf("expected updated description, got %s", found.Transaction.Description)
		}
	})

	t.Run("another user's update hits zero rows", func(t *testing.T) {
		stolen := *txn
		stolen.UserID = other
		err := repo.Update(ctx, &stolen)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})
}

func TestTransactionRepository_DeleteByIDAndUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewTransactionRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db)
	other := seedUser(t, db)
	txn := seedTransaction(t, db, owner, nil, date(2024, time.April, 1), "10.00", entity.TransactionTypeExpense)

	t.Run("another user cannot delete", func(t *testing.T) {
		err := repo.DeleteByIDAndUser(ctx, txn.ID, other)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound, got %v", err)
		}
	})

	t.Run("owner deletes the transaction", func(t *testing.T) {
		if err := repo.DeleteByIDAndUser(ctx, txn.ID, owner); err != nil {
			t.Fatalf("DeleteByIDAndUser failed: %v", err)
		}

		_, err := repo.FindByIDAndUser(ctx, txn.ID, owner)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected transaction to be gone, got %v", err)
		}

		// Deleting again reports not found.
		err = repo.DeleteByIDAndUser(ctx, txn.ID, owner)
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("expected ErrTransactionNotFound on second delete, got %v", err)
		}
	})
}
