package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"aurora-app-go/pkg/logger"
	_ "modernc.org/sqlite"
)

// OpenSQLite opens the device-local database file, creating its directory
// when needed. The pure-Go driver allows a single writer, so the pool is
// pinned to one connection.
func OpenSQLite(path string, log logger.Logger) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite ping: %w", err)
	}
	if _, err := sqlDB.Exec(`PRAGMA journal_mode = WAL; PRAGMA busy_timeout = 5000;`); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sqlite pragmas: %w", err)
	}

	log.Info("db: sqlite opened", "path", path)
	return sqlDB, nil
}
