// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis opens the go-redis client that holds refresh sessions.

Sessions are short-lived keys with a TTL matching the refresh token expiry,
plus one set per user indexing the sessions to revoke on logout-all. Nothing
else in the service depends on Redis, so losing it only degrades sign-in.
*/
package redis

import (
	stdctx "context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 3 * time.Second
	ioTimeout   = 2 * time.Second
	pingTimeout = 2 * time.Second
)

// Options sizes the client. A zero PoolSize keeps the go-redis default.
type Options struct {
	PoolSize     int
	MinIdleConns int
}

// NewClient parses redisURL, applies options and pings the server once.
func NewClient(context stdctx.Context, redisURL string, options Options, logger *slog.Logger) (*redis.Client, error) {
	clientOptions, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis_parse_url: %w", err)
	}

	if options.PoolSize > 0 {
		clientOptions.PoolSize = options.PoolSize
	}
	clientOptions.MinIdleConns = options.MinIdleConns
	clientOptions.DialTimeout = dialTimeout
	clientOptions.ReadTimeout = ioTimeout
	clientOptions.WriteTimeout = ioTimeout

	client := redis.NewClient(clientOptions)

	if err := Ping(context, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_client_ready",
		slog.String("addr", clientOptions.Addr),
		slog.Int("db", clientOptions.DB),
		slog.Int("pool_size", clientOptions.PoolSize),
	)

	return client, nil
}

// Ping reports whether the session store answers within a short deadline.
func Ping(context stdctx.Context, client *redis.Client) error {
	pingCtx, cancel := stdctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis_ping: %w", err)
	}
	return nil
}
