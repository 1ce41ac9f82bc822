// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sqlite provides the embedded SQLite record store handle.

It is the zero-infrastructure alternative to the PostgreSQL pool: the same
product and account repositories run on top of it when STORE_DRIVER=sqlite,
and repository tests run against an in-memory instance.

Schema changes live in migrations/*.sql and are applied at most once per file,
tracked in the schema_migrations table.
*/
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"
	"time"

	// Registers the "sqlite" database/sql driver (pure Go, no cgo).
	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

const migrationTable = "schema_migrations"

//go:embed migrations/*.sql
var migrationFS embed.FS

/*
Open opens (or creates) the SQLite database at path and applies the embedded
migrations.

Parameters:
  - context: context.Context
  - path: string (file path, or [MemoryPath])
  - logger: *slog.Logger

Returns:
  - *sql.DB: a ready handle
  - error: open, ping or migration failures
*/
func Open(context context.Context, path string, logger *slog.Logger) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite: path is required")
	}

	dsn := MemoryPath
	if path != MemoryPath {
		dsn = filepath.Clean(path) + "?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open: %w", err)
	}

	// Every connection to ":memory:" is a different database; a single
	// connection keeps one. SQLite serialises writers anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: ping: %w", err)
	}

	applied, err := ApplyMigrations(context, db, migrationFS, "migrations")
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	logger.Info("sqlite store opened",
		slog.String("path", path),
		slog.Int("migrations_applied", applied),
	)

	return db, nil
}

// ApplyMigrations executes the .sql files under root in name order, each at
// most once, and returns how many were applied by this call.
func ApplyMigrations(context context.Context, db *sql.DB, migrations fs.FS, root string) (int, error) {
	entries, err := fs.ReadDir(migrations, root)
	if err != nil {
		return 0, fmt.Errorf("sqlite: read migrations dir: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	createSQL := `CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
		name       TEXT PRIMARY KEY,
		applied_at INTEGER NOT NULL
	)`
	if _, err := db.ExecContext(context, createSQL); err != nil {
		return 0, fmt.Errorf("sqlite: ensure migration table: %w", err)
	}

	applied := 0
	for _, file := range files {
		done, err := isApplied(context, db, file)
		if err != nil {
			return applied, fmt.Errorf("sqlite: check migration %s: %w", file, err)
		}
		if done {
			continue
		}

		content, err := fs.ReadFile(migrations, root+"/"+file)
		if err != nil {
			return applied, fmt.Errorf("sqlite: read migration %s: %w", file, err)
		}

		tx, err := db.BeginTx(context, nil)
		if err != nil {
			return applied, fmt.Errorf("sqlite: begin migration %s: %w", file, err)
		}

		if _, err := tx.ExecContext(context, string(content)); err != nil {
			_ = tx.Rollback()
			return applied, fmt.Errorf("sqlite: exec migration %s: %w", file, err)
		}

		if _, err := tx.ExecContext(context,
			"INSERT INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
			file, time.Now().UTC().UnixMilli(),
		); err != nil {
			_ = tx.Rollback()
			return applied, fmt.Errorf("sqlite: record migration %s: %w", file, err)
		}

		if err := tx.Commit(); err != nil {
			return applied, fmt.Errorf("sqlite: commit migration %s: %w", file, err)
		}
		applied++
	}

	return applied, nil
}

// Ping verifies that the SQLite handle is usable.
func Ping(context context.Context, db *sql.DB) error {
	if err := db.PingContext(context); err != nil {
		return fmt.Errorf("sqlite: ping failed: %w", err)
	}
	return nil
}

func isApplied(context context.Context, db *sql.DB, name string) (bool, error) {
	var found int
	err := db.QueryRowContext(context, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", name).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
