// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil provides helpers for interacting with values stored in [context.Context].
//
// The current actor is always read through this package, never through a
// package-level variable, so tests can inject any identity they need.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/ctxkey"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context, falling back to the
// global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}

// # Identity

// WithClaims returns a new context carrying verified token claims.
func WithClaims(ctx context.Context, claims *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, ctxkey.KeyClaims, claims)
}

// GetClaims retrieves the verified token claims, or nil for anonymous requests.
func GetClaims(ctx context.Context) *sec.AuthClaims {
	claims, ok := ctx.Value(ctxkey.KeyClaims).(*sec.AuthClaims)
	if !ok {
		return nil
	}
	return claims
}

// WithActor attaches an actor identity. Used by tests and internal callers
// that already hold an identity rather than a token.
func WithActor(ctx context.Context, actor sec.Actor) context.Context {
	return WithClaims(ctx, &sec.AuthClaims{UserID: actor.ID, DisplayName: actor.DisplayName})
}

// GetActor returns the current actor, or nil when the request is anonymous.
func GetActor(ctx context.Context) *sec.Actor {
	return GetClaims(ctx).Actor()
}
