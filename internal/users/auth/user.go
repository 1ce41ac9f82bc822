// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements account identity and session management.

It defines the account entities (User, Session), the login and registration
forms, and the session lifecycle behind short-lived access tokens and
rotating refresh tokens.

# Architecture

  - Service: Register, Login, RefreshSession, Logout, Me.
  - Repository: users live in the relational store (Postgres or SQLite),
    refresh sessions live in Redis.
  - Security: bcrypt password hashes and RS256 access tokens from [sec].
*/
package auth

import (
	"time"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
)

// # Domain Entities

// User represents a registered account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string    `json:"nombre"`
	CreatedAt    time.Time `json:"creado"`
}

// Actor returns the identity carried in access tokens for this account.
func (user *User) Actor() sec.Actor {
	return sec.Actor{ID: user.ID, DisplayName: user.DisplayName}
}

// Session represents an active refresh-token session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TokenHash string    `json:"-"` // Hashed value of the refresh token.
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Expired reports whether the session is past its expiry at now.
func (session *Session) Expired(now time.Time) bool {
	return !now.Before(session.ExpiresAt)
}

// # Field Identifiers

// Form and payload field names of the authentication domain.
const (
	FieldName        = "nombre"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldAccessToken = "access_token"
	FieldTokenType   = "token_type"
	FieldExpiresIn   = "expires_in"
	FieldUser        = "user"
)
