// Package mock provides shared test doubles for the integration suite.
package mock

import (
	"database/sql"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ledgertrack/backend/internal/integration/persistence/model"
)

var (
	once sync.Once
	db   *Db
)

// Db wraps a shared in-memory database used by all scenarios. A single
// connection is enforced so every session sees the same memory database.
type Db struct {
	Conn *gorm.DB
}

// migratedModels lists every table the suite needs, in creation order.
var migratedModels = []any{
	&model.UserModel{},
	&model.RefreshTokenModel{},
	&model.CategoryModel{},
	&model.DateDimensionModel{},
	&model.TransactionModel{},
}

// NewDb opens (once) the shared in-memory database and migrates the schema.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic("failed to open in-memory database: " + err.Error())
	}
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to in-memory database: " + err.Error())
	}

	if err := conn.AutoMigrate(migratedModels...); err != nil {
		panic("failed to migrate test schema: " + err.Error())
	}

	return &Db{Conn: conn}
}

// Reset wipes all rows so scenarios start from an empty database. Deletion
// order respects foreign keys.
func (d *Db) Reset() error {
	for _, table := range []string{
		"transactions",
		"date_dimensions",
		"categories",
		"refresh_tokens",
		"users",
	} {
		if err := d.Conn.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}
