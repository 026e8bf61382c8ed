package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ledgertrack/backend/internal/domain/entity"
	domainerror "github.com/ledgertrack/backend/internal/domain/error"
)

func TestCategoryRepository_FindByIDAndUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db)
	other := seedUser(t, db)
	groceries := seedCategory(t, db, owner, "Groceries", entity.CategoryTypeExpense)

	t.Run("owner can read the category", func(t *testing.T) {
		found, err := repo.FindByIDAndUser(ctx, groceries.ID, owner)
		if err != nil {
			t.Fatalf("FindByIDAndUser failed: %v", err)
		}
		if found.Name != "Groceries" {
			t.Errorf("expected name Groceries, got %s", found.Name)
		}
	})

	t.Run("another user gets not found", func(t *testing.T) {
		_, err := repo.FindByIDAndUser(ctx, groceries.ID, other)
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("unknown id gets not found", func(t *testing.T) {
		_, err := repo.FindByIDAndUser(ctx, uuid.New(), owner)
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestCategoryRepository_FindByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db)
	other := seedUser(t, db)
	seedCategory(t, db, owner, "Transport", entity.CategoryTypeExpense)
	seedCategory(t, db, owner, "Groceries", entity.CategoryTypeExpense)
	seedCategory(t, db, owner, "Salary", entity.CategoryTypeIncome)
	seedCategory(t, db, other, "Rent", entity.CategoryTypeExpense)

	categories, err := repo.FindByUser(ctx, owner)
	if err != nil {
		t.Fatalf("FindByUser failed: %v", err)
	}

	if len(categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(categories))
	}

	// Ordered by name ascending.
	expected := []string{"Groceries", "Salary", "Transport"}
	for i, name := range expected {
		if categories[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, categories[i].Name)
		}
	}
}

func TestCategoryRepository_ExistsByNameAndUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db)
	other := seedUser(t, db)
	seedCategory(t, db, owner, "Groceries", entity.CategoryTypeExpense)

	exists, err := repo.ExistsByNameAndUser(ctx, "Groceries", owner)
	if err != nil {
		t.Fatalf("ExistsByNameAndUser failed: %v", err)
	}
	if !exists {
		t.Error("expected Groceries to exist for owner")
	}

	// Uniqueness is per user, so another user may reuse the name.
	exists, err = repo.ExistsByNameAndUser(ctx, "Groceries", other)
	if err != nil {
		t.Fatalf("ExistsByNameAndUser failed: %v", err)
	}
	if exists {
		t.Error("expected Groceries to not exist for another user")
	}
}

func TestCategoryRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db)
	category := seedCategory(t, db, owner, "Groceries", entity.CategoryTypeExpense)

	category.Name = "Food"
	category.Color = "#FF0000"
	category.UpdatedAt = time.Now().UTC()
	if err := repo.Update(ctx, category); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	found, err := repo.FindByIDAndUser(ctx, category.ID, owner)
	if err != nil {
		t.Fatalf("FindByIDAndUser failed: %v", err)
	}
	if found.Name != "Food" {
		t.Errorf("expected name Food, got %s", found.Name)
	}
	if found.Color != "#FF0000" {
		t.Errorf("expected color #FF0000, got %s", found.Color)
	}
}

func TestCategoryRepository_DeleteAndDetach(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	txnRepo := NewTransactionRepository(db)
	ctx := context.Background()

	t.Run("deletes category and detaches transactions", func(t *testing.T) {
		owner := seedUser(t, db)
		category := seedCategory(t, db, owner, "Groceries", entity.CategoryTypeExpense)
		txn := seedTransaction(t, db, owner, &category.ID, date(2024, time.May, 2), "42.50", entity.TransactionTypeExpense)

		if err := repo.DeleteAndDetach(ctx, category.ID, owner); err != nil {
			t.Fatalf("DeleteAndDetach failed: %v", err)
		}

		_, err := repo.FindByIDAndUser(ctx, category.ID, owner)
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected category to be gone, got %v", err)
		}

		// The transaction survives with its category reference cleared.
		survivor, err := txnRepo.FindByIDAndUser(ctx, txn.ID, owner)
		if err != nil {
			t.Fatalf("expected transaction to survive, got %v", err)
		}
		if survivor.Transaction.CategoryID != nil {
			t.Errorf("expected nil category reference, got %v", survivor.Transaction.CategoryID)
		}
		if survivor.Category != nil {
			t.Error("expected no joined category on detached transaction")
		}
	})

	t.Run("another user cannot delete the category", func(t *testing.T) {
		owner := seedUser(t, db)
		other := seedUser(t, db)
		category := seedCategory(t, db, owner, "Bills", entity.CategoryTypeExpense)

		err := repo.DeleteAndDetach(ctx, category.ID, other)
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}

		// Still present for the owner.
		if _, err := repo.FindByIDAndUser(ctx, category.ID, owner); err != nil {
			t.Errorf("expected category to remain, got %v", err)
		}
	})

	t.Run("unknown id gets not found", func(t *testing.T) {
		owner := seedUser(t, db)
		err := repo.DeleteAndDetach(ctx, uuid.New(), owner)
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}
