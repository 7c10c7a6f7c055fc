// Package databasetest opens throwaway in-memory databases migrated with the
// production models.
package databasetest

import (
	"fmt"
	"testing"
	"time"

	"portal/config"
	"portal/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// New returns a fresh SQLite in-memory database for t. A single connection
// is used so concurrent callers are serialized by the pool the same way a
// row lock would serialize them.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := database.NewDB(&config.DatabaseConfig{
		Driver:          "sqlite",
		DSN:             fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxIdleConns:    1,
		MaxOpenConns:    1,
		ConnMaxLifetime: time.Hour,
		LogLevel:        "silent",
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
