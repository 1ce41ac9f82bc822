// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/apperr"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sqlite"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/testutil"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/users/auth"
)

// memorySessions is an in-memory auth.SessionRepository.
type memorySessions struct {
	mu       sync.Mutex
	sessions map[string]auth.Session
}

func newMemorySessions() *memorySessions {
	return &memorySessions{sessions: make(map[string]auth.Session)}
}

func (repository *memorySessions) Create(_ context.Context, session *auth.Session) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	repository.sessions[session.TokenHash] = *session
	return nil
}

func (repository *memorySessions) FindByTokenHash(_ context.Context, tokenHash string) (*auth.Session, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	session, ok := repository.sessions[tokenHash]
	if !ok {
		return nil, apperr.NotFound("Session")
	}
	return &session, nil
}

func (repository *memorySessions) Revoke(_ context.Context, session *auth.Session) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	delete(repository.sessions, session.TokenHash)
	return nil
}

func (repository *memorySessions) RevokeAll(_ context.Context, userID string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	for hash, session := range repository.sessions {
		if session.UserID == userID {
			delete(repository.sessions, hash)
		}
	}
	return nil
}

func (repository *memorySessions) count() int {
	repository.mu.Lock()
	defer repository.mu.Unlock()
	return len(repository.sessions)
}

var (
	signingKeyOnce sync.Once
	signingKey     *rsa.PrivateKey
)

func newTokens(t *testing.T) *sec.TokenService {
	t.Helper()
	signingKeyOnce.Do(func() {
		key, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			panic(err)
		}
		signingKey = key
	})
	return sec.NewTokenServiceFromKey(signingKey, "producthunt-test")
}

func newUsers(t *testing.T) *auth.SQLiteUserRepository {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.MemoryPath, testutil.Logger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return auth.NewSQLiteUserRepository(db)
}

type fixture struct {
	service  *auth.Service
	users    *auth.SQLiteUserRepository
	sessions *memorySessions
	tokens   *sec.TokenService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	users := newUsers(t)
	sessions := newMemorySessions()
	tokens := newTokens(t)
	return fixture{
		service:  auth.NewService(users, sessions, tokens),
		users:    users,
		sessions: sessions,
		tokens:   tokens,
	}
}
