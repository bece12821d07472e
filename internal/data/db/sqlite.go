package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/orderbench/internal/platform/logger"
)

// OpenSqlite opens a sqlite database for local runs and benchmarks. The pool
// is pinned to a single connection: sqlite serializes writers anyway, and a
// single connection keeps the concurrent strategies from tripping over
// database-is-locked errors while still exercising their fan-out paths.
func OpenSqlite(dsn string, logg *logger.Logger) (*gorm.DB, error) {
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	logg.With("component", "Sqlite").Info("Opened sqlite database", "dsn", dsn)
	return gdb, nil
}
