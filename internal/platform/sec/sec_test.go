// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
)

func newTokenService(t *testing.T, issuer string) *sec.TokenService {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return sec.NewTokenServiceFromKey(key, issuer)
}

/*
TestTokenService_RoundTrip signs an access token and rebuilds the actor from it.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTokenService(t, "producthunt")

	token, err := service.GenerateAccessToken(sec.Actor{ID: "u1", DisplayName: "Ana"}, time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, &sec.Actor{ID: "u1", DisplayName: "Ana"}, claims.Actor())
}

/*
TestTokenService_Rejects covers expired tokens and foreign signers.
*/
func TestTokenService_Rejects(t *testing.T) {
	service := newTokenService(t, "producthunt")

	expired, err := service.GenerateAccessToken(sec.Actor{ID: "u1"}, -time.Minute)
	require.NoError(t, err)
	_, err = service.VerifyToken(expired)
	assert.Error(t, err)

	other := newTokenService(t, "producthunt")
	foreign, err := other.GenerateAccessToken(sec.Actor{ID: "u1"}, time.Minute)
	require.NoError(t, err)
	_, err = service.VerifyToken(foreign)
	assert.Error(t, err)
}

/*
TestPasswordHash verifies bcrypt hashing and comparison.
*/
func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("secreto")
	require.NoError(t, err)

	assert.True(t, sec.CheckPasswordHash("secreto", hash))
	assert.False(t, sec.CheckPasswordHash("otro", hash))
}

/*
TestSecureToken checks token generation and hashing.
*/
func TestSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, sec.HashToken(first), 64)
	assert.Equal(t, sec.HashToken(first), sec.HashToken(first))
}

/*
TestClaims_Actor treats missing claims as anonymous.
*/
func TestClaims_Actor(t *testing.T) {
	var claims *sec.AuthClaims
	assert.Nil(t, claims.Actor())
	assert.Nil(t, (&sec.AuthClaims{}).Actor())
}
