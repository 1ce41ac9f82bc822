// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sqlite_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sqlite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestOpen_AppliesSchema opens an in-memory store and checks the tables exist.
*/
func TestOpen_AppliesSchema(t *testing.T) {
	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	for _, table := range []string{"users", "products"} {
		var name string
		err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err)
		assert.Equal(t, table, name)
	}
}

/*
TestApplyMigrations_Once runs every file a single time.
*/
func TestApplyMigrations_Once(t *testing.T) {
	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	extra := fstest.MapFS{
		"m/0001_a.sql": {Data: []byte("CREATE TABLE a (id INTEGER);")},
		"m/0002_b.sql": {Data: []byte("CREATE TABLE b (id INTEGER);")},
		"m/readme.txt": {Data: []byte("ignored")},
	}

	applied, err := sqlite.ApplyMigrations(context.Background(), db, extra, "m")
	require.NoError(t, err)
	assert.Equal(t, 2, applied)

	applied, err = sqlite.ApplyMigrations(context.Background(), db, extra, "m")
	require.NoError(t, err)
	assert.Equal(t, 0, applied)
}
