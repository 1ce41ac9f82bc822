// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/ctxutil"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "test-request-id")
	assert.Equal(t, "test-request-id", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Actor verifies that the current actor is derived from the claims.
*/
func TestContext_Actor(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetActor(ctx))
	assert.Nil(t, ctxutil.GetClaims(ctx))

	ctx = ctxutil.WithActor(ctx, sec.Actor{ID: "user-123", DisplayName: "Ana"})
	actor := ctxutil.GetActor(ctx)

	require.NotNil(t, actor)
	assert.Equal(t, "user-123", actor.ID)
	assert.Equal(t, "Ana", actor.DisplayName)
	assert.Equal(t, "user-123", ctxutil.GetClaims(ctx).UserID)
}
