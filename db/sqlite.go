// db/sqlite.go
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite" // register pure-Go SQLite driver

	"github.com/campushub/campus-api/config"
	logger "github.com/campushub/campus-api/logging"
)

var SQLite *sql.DB

// The menu cache is replaced wholesale on every successful sync, so
// the natural key (cafeteria_id, date, type_nr) resolves duplicates
// within a batch by keeping the later record.
const schema = `
CREATE TABLE IF NOT EXISTS cafeterias_menus (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	cafeteria_id INTEGER NOT NULL,
	date TEXT NOT NULL,
	type_short TEXT NOT NULL,
	type_long TEXT NOT NULL,
	type_nr INTEGER NOT NULL,
	name TEXT NOT NULL,
	UNIQUE (cafeteria_id, date, type_nr) ON CONFLICT REPLACE
);
CREATE TABLE IF NOT EXISTS sync_status (
	source TEXT PRIMARY KEY,
	last_sync TEXT NOT NULL
);`

// Open opens a SQLite database using the modernc.org/sqlite driver.
//
// For file-based databases, pass a path like "./campus.db". For
// in-memory databases, pass ":memory:".
func Open(dsn string) (*sql.DB, error) { return sql.Open("sqlite", dsn) }

// EnsureSchema creates the cache tables if needed. Exposed so tests
// can run against their own database handle.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

func InitSQLite() error {
	path := config.GetString("sqlite.path")
	logger.Info("Opening SQLite database", zap.String("path", path))

	db, err := Open(path)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// The cache has a single writer; one connection keeps the
	// delete+insert replace visible as an atomic unit to readers.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	if err := EnsureSchema(db); err != nil {
		return fmt.Errorf("failed to ensure SQLite schema: %w", err)
	}

	SQLite = db
	logger.Info("Successfully opened SQLite database")
	return nil
}

func CloseSQLite() {
	if SQLite != nil {
		if err := SQLite.Close(); err != nil {
			logger.Error("Error closing SQLite database", zap.Error(err))
		} else {
			logger.Info("SQLite database closed successfully")
		}
	}
}
