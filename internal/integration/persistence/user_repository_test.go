package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ledgertrack/backend/internal/domain/entity"
	domainerror "github.com/ledgertrack/backend/internal/domain/error"
	"github.com/ledgertrack/backend/internal/integration/persistence/model"
)

func TestUserRepository_FindByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := entity.NewUser("alice@example.com", "Alice", "hash", "BRL")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("finds existing user", func(t *testing.T) {
		found, err := repo.FindByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("FindByEmail failed: %v", err)
		}
		if found.Name != "Alice" {
			t.Errorf("expected name Alice, got %s", found.Name)
		}
		if found.PreferredCurrency != "BRL" {
			t.Errorf("expected currency BRL, got %s", found.PreferredCurrency)
		}
	})

	t.Run("unknown email gets not found", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nobody@example.com")
		if !errors.Is(err, domainerror.ErrUserNotFound) {
			t.Errorf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := entity.NewUser("bob@example.com", "Bob", "hash", "")
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	exists, err := repo.ExistsByEmail(ctx, "bob@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail failed: %v", err)
	}
	if !exists {
		t.Error("expected bob@example.com to exist")
	}

	exists, err = repo.ExistsByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("ExistsByEmail failed: %v", err)
	}
	if exists {
		t.Error("expected nobody@example.com to not exist")
	}
}

func TestUserRepository_DeleteRemovesOwnedData(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	tokenRepo := NewTokenRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db)
	survivorUser := seedUser(t, db)

	category := seedCategory(t, db, owner, "Groceries", entity.CategoryTypeExpense)
	seedTransaction(t, db, owner, &category.ID, date(2024, time.July, 1), "20.00", entity.TransactionTypeExpense)
	if err := tokenRepo.SaveRefreshToken(ctx, "owner-token", owner, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("SaveRefreshToken failed: %v", err)
	}

	survivorCategory := seedCategory(t, db, survivorUser, "Rent", entity.CategoryTypeExpense)
	seedTransaction(t, db, survivorUser, &survivorCategory.ID, date(2024, time.July, 2), "900.00", entity.TransactionTypeExpense)

	if err := repo.Delete(ctx, owner); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err := repo.FindByID(ctx, owner)
	if !errors.Is(err, domainerror.ErrUserNotFound) {
		t.Errorf("expected user to be gone, got %v", err)
	}

	counts := map[string]int64{}
	for table, cond := range map[string]string{
		"transactions":   "user_id",
		"categories":     "user_id",
		"refresh_tokens": "user_id",
	} {
		var count int64
		if err := db.Table(table).Where(cond+" = ?", owner).Count(&count).Error; err != nil {
			t.Fatalf("count on %s failed: %v", table, err)
		}
		counts[table] = count
	}
	for table, count := range counts {
		if count != 0 {
			t.Errorf("expected no %s rows for deleted user, got %d", table, count)
		}
	}

	// Another user's data is untouched.
	var survivorTxns int64
	if err := db.Model(&model.TransactionModel{}).Where("user_id = ?", survivorUser).Count(&survivorTxns).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if survivorTxns != 1 {
		t.Errorf("expected survivor to keep 1 transaction, got %d", survivorTxns)
	}
}
