// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"fmt"
	"strings"
	"testing"

	"templo/database"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SQLite returns a migrated in-memory database private to the test.
func SQLite(tb testing.TB) *gorm.DB {
	tb.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(tb.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), database.GormConfig("silent"))
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}
	return db
}

// Mock returns a mysql-flavoured gorm handle backed by sqlmock, for forcing storage errors.
func Mock(tb testing.TB) (*gorm.DB, sqlmock.Sqlmock) {
	tb.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		tb.Fatalf("sqlmock: %v", err)
	}
	tb.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), database.GormConfig("silent"))
	if err != nil {
		tb.Fatalf("open gorm: %v", err)
	}
	return db, mock
}
