package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgertrack/backend/internal/domain/entity"
	"github.com/ledgertrack/backend/internal/integration/persistence/model"
)

// newTestDB opens a private in-memory database and migrates the full schema.
// A single connection is forced so every query sees the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.RefreshTokenModel{},
		&model.CategoryModel{},
		&model.DateDimensionModel{},
		&model.TransactionModel{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

var testUserSeq int

// seedUser creates a user row and returns its id. Emails are generated so
// repeated calls in one test never collide on the unique index.
func seedUser(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	testUserSeq++
	user := entity.NewUser(
		fmt.Sprintf("user%d@example.com", testUserSeq),
		fmt.Sprintf("Test User %d", testUserSeq),
		"$2a$12$C6UzMDM.H6dfI/f/IKxGhuLqdM3zW1z9eJZ3sQ0rT5uFQy1a2b3c4",
		"",
	)
	if err := NewUserRepository(db).Create(context.Background(), user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user.ID
}

// seedCategory creates a category for the user and returns the entity.
func seedCategory(t *testing.T, db *gorm.DB, userID uuid.UUID, name string, categoryType entity.CategoryType) *entity.Category {
	t.Helper()

	category := entity.NewCategory(userID, name, categoryType, entity.DefaultCategoryColor, entity.DefaultCategoryIcon)
	if err := NewCategoryRepository(db).Create(context.Background(), category); err != nil {
		t.Fatalf("failed to seed category %q: %v", name, err)
	}
	return category
}

// seedTransaction creates a transaction on the given calendar date and
// returns the entity. The amount is signed according to the type, matching
// what the validation layer stores.
func seedTransaction(t *testing.T, db *gorm.DB, userID uuid.UUID, categoryID *uuid.UUID, date time.Time, amount string, transactionType entity.TransactionType) *entity.Transaction {
	t.Helper()

	dim, err := NewDateDimensionRepository(db).GetOrCreate(context.Background(), date)
	if err != nil {
		t.Fatalf("failed to resolve date dimension: %v", err)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		t.Fatalf("invalid amount %q: %v", amount, err)
	}
	value = value.Abs()
	if transactionType == entity.TransactionTypeExpense {
		value = value.Neg()
	}

	txn := entity.NewTransaction(userID, categoryID, dim.ID, value, fmt.Sprintf("%s of %s", transactionType, amount), transactionType)
	if err := NewTransactionRepository(db).Create(context.Background(), txn); err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return txn
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
