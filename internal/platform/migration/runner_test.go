// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/migration"
)

/*
TestPgx5DSN rewrites postgres schemes only.
*/
func TestPgx5DSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/app", "pgx5://u:p@db:5432/app"},
		{"postgresql://u@db/app?sslmode=disable", "pgx5://u@db/app?sslmode=disable"},
		{"pgx5://db/app", "pgx5://db/app"},
		{"host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, migration.Pgx5DSN(tt.in))
	}
}

/*
TestEmbeddedSource exposes the initial schema as version 1 with a down step.
*/
func TestEmbeddedSource(t *testing.T) {
	driver, err := migration.EmbeddedSource()
	require.NoError(t, err)
	t.Cleanup(func() { _ = driver.Close() })

	first, err := driver.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, name, err := driver.ReadUp(first)
	require.NoError(t, err)
	t.Cleanup(func() { _ = up.Close() })
	assert.Equal(t, "init", name)

	down, _, err := driver.ReadDown(first)
	require.NoError(t, err)
	_ = down.Close()
}
