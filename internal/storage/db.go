package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// DataPathEnv overrides the configured data location.
const DataPathEnv = "HJ_DATA"

// DefaultDBPath returns the default journal database location.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".habitjournal.db"), nil
}

// ResolveDBPath picks the data path: $HJ_DATA, then configured, then the
// default. A leading "~/" is expanded.
func ResolveDBPath(configured string) (string, error) {
	path := strings.TrimSpace(os.Getenv(DataPathEnv))
	if path == "" {
		path = strings.TrimSpace(configured)
	}
	if path == "" {
		return DefaultDBPath()
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home dir: %w", err)
		}
		path = filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
	}
	return path, nil
}

// OpenSQLite opens (and creates if missing) the SQLite database at path and
// brings its schema up to date.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One writer; this also keeps ":memory:" on a single database.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
