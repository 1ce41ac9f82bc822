// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/apperr"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/ctxutil"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/validate"
	"github.com/Miguelch7/RLGC-producthuntnext/pkg/uuid"
)

// MsgInvalidCredentials is the single message for any rejected login, so a
// caller cannot tell an unknown email from a wrong password.
const MsgInvalidCredentials = "Email o password incorrectos"

// # Contracts & Types

// TokenProvider defines the contract for generating access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for actor.
	GenerateAccessToken(actor sec.Actor, timeToLive time.Duration) (string, error)
}

// Service implements account registration and session use cases.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository
	tokenProvider     TokenProvider
	now               func() time.Time
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, sessionRepo SessionRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		tokenProvider:     tokenProv,
		now:               time.Now,
	}
}

// ClientInfo describes the device a session is opened from.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// LoginSession represents a successfully established user session.
type LoginSession struct {
	AccessToken           string
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *User
}

// NormalizeEmail returns the stored form of an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// # Registration Flow

/*
NewRegisterForm opens a registration form session.

Description: The lifecycle validates with [RegisterRules] and, once clean,
creates the account. registered receives the stored user.

Parameters:
  - registered: func(*User) (may be nil)

Returns:
  - *validate.Lifecycle: A fresh form session
*/
func (service *Service) NewRegisterForm(registered func(*User)) *validate.Lifecycle {
	return validate.NewLifecycle(InitialRegisterValues(), RegisterRules,
		func(context context.Context, values validate.Values) error {
			user, err := service.createUser(context, values)
			if err != nil {
				return err
			}
			if registered != nil {
				registered(user)
			}
			return nil
		})
}

/*
Register validates the registration form and persists a new account.

Parameters:
  - context: context.Context
  - values: validate.Values (nombre, email, password)

Returns:
  - *User: Created entity
  - error: VALIDATION_ERROR, CONFLICT (email taken) or storage errors
*/
func (service *Service) Register(context context.Context, values validate.Values) (*User, error) {
	var created *User
	form := service.NewRegisterForm(func(user *User) { created = user })
	form.Fill(values)

	committed, err := form.HandleSubmit(context)
	if err != nil {
		return nil, err
	}
	if !committed {
		return nil, form.ValidationErr()
	}

	return created, nil
}

func (service *Service) createUser(context context.Context, values validate.Values) (*User, error) {
	email := NormalizeEmail(values[FieldEmail])

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(context, email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}
	if !apperr.HasCode(err, apperr.CodeNotFound) {
		return nil, fmt.Errorf("auth_service_lookup_failed: %w", err)
	}

	hashedPassword, err := sec.HashPassword(values[FieldPassword])
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		DisplayName:  strings.TrimSpace(values[FieldName]),
		CreatedAt:    service.now().UTC(),
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_registered",
		slog.String("user_id", user.ID),
	)

	return user, nil
}

// # Authentication Flow

/*
NewLoginForm opens a login form session for a client.

Description: The lifecycle validates with [LoginRules] and, once clean,
checks the credentials and opens a session. started receives it.

Parameters:
  - client: ClientInfo
  - started: func(*LoginSession) (may be nil)

Returns:
  - *validate.Lifecycle: A fresh form session
*/
func (service *Service) NewLoginForm(client ClientInfo, started func(*LoginSession)) *validate.Lifecycle {
	return validate.NewLifecycle(InitialLoginValues(), LoginRules,
		func(context context.Context, values validate.Values) error {
			session, err := service.authenticate(context, values, client)
			if err != nil {
				return err
			}
			if started != nil {
				started(session)
			}
			return nil
		})
}

/*
Login validates the login form, checks the credentials and issues tokens.

Parameters:
  - context: context.Context
  - values: validate.Values (email, password)
  - client: ClientInfo

Returns:
  - *LoginSession: Transport-ready session identifiers
  - error: VALIDATION_ERROR, AUTHENTICATION_FAILED or internal failures
*/
func (service *Service) Login(context context.Context, values validate.Values, client ClientInfo) (*LoginSession, error) {
	var opened *LoginSession
	form := service.NewLoginForm(client, func(session *LoginSession) { opened = session })
	form.Fill(values)

	committed, err := form.HandleSubmit(context)
	if err != nil {
		return nil, err
	}
	if !committed {
		return nil, form.ValidationErr()
	}

	return opened, nil
}

func (service *Service) authenticate(context context.Context, values validate.Values, client ClientInfo) (*LoginSession, error) {
	user, err := service.userRepository.FindByEmail(context, NormalizeEmail(values[FieldEmail]))
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.AuthenticationFailed(MsgInvalidCredentials)
		}
		return nil, fmt.Errorf("auth_service_lookup_failed: %w", err)
	}

	if !sec.CheckPasswordHash(values[FieldPassword], user.PasswordHash) {
		return nil, apperr.AuthenticationFailed(MsgInvalidCredentials)
	}

	session, err := service.openSession(context, user, client)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "user_logged_in",
		slog.String("user_id", user.ID),
	)

	return session, nil
}

// openSession issues an access token and persists a fresh refresh session.
func (service *Service) openSession(context context.Context, user *User, client ClientInfo) (*LoginSession, error) {
	accessToken, err := service.tokenProvider.GenerateAccessToken(user.Actor(), AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	refreshToken, err := sec.GenerateSecureToken(RefreshTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_refresh_token_failed: %w", err)
	}

	expiresAt := service.now().Add(RefreshTokenTTL)
	session := &Session{
		ID:        uuid.New(),
		UserID:    user.ID,
		TokenHash: sec.HashToken(refreshToken),
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		ExpiresAt: expiresAt,
		CreatedAt: service.now().UTC(),
	}

	if err := service.sessionRepository.Create(context, session); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	return &LoginSession{
		AccessToken:           accessToken,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: expiresAt,
		User:                  user,
	}, nil
}

// # Session Management

/*
RefreshSession implements refresh token rotation.

Description: Verifies the refresh token, revokes it so it cannot be replayed,
and issues a fresh pair of tokens.

Parameters:
  - context: context.Context
  - refreshToken: string
  - client: ClientInfo

Returns:
  - *LoginSession: New session credentials
  - error: UNAUTHORIZED or storage failures
*/
func (service *Service) RefreshSession(context context.Context, refreshToken string, client ClientInfo) (*LoginSession, error) {
	session, err := service.sessionRepository.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.Unauthorized("Invalid or expired refresh token")
		}
		return nil, fmt.Errorf("auth_service_refresh_lookup_failed: %w", err)
	}

	if err := service.sessionRepository.Revoke(context, session); err != nil {
		return nil, fmt.Errorf("auth_service_refresh_revoke_failed: %w", err)
	}

	user, err := service.userRepository.FindByID(context, session.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("User not found")
	}

	rotated, err := service.openSession(context, user, client)
	if err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "session_refreshed",
		slog.String("user_id", user.ID),
	)

	return rotated, nil
}

/*
Logout revokes the session behind refreshToken.

Description: Idempotent. An unknown or already revoked token is a success.

Parameters:
  - context: context.Context
  - refreshToken: string

Returns:
  - error: Revocation failures
*/
func (service *Service) Logout(context context.Context, refreshToken string) error {
	session, err := service.sessionRepository.FindByTokenHash(context, sec.HashToken(refreshToken))
	if err != nil {
		return nil
	}

	if err := service.sessionRepository.Revoke(context, session); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "session_revoked",
		slog.String("user_id", session.UserID),
	)

	return nil
}

// LogoutAll revokes every session of userID.
func (service *Service) LogoutAll(context context.Context, userID string) error {
	if err := service.sessionRepository.RevokeAll(context, userID); err != nil {
		return fmt.Errorf("auth_service_logout_all_failed: %w", err)
	}

	ctxutil.GetLogger(context).InfoContext(context, "sessions_revoked",
		slog.String("user_id", userID),
	)

	return nil
}

// Me returns the account behind an authenticated actor.
func (service *Service) Me(context context.Context, actor sec.Actor) (*User, error) {
	return service.userRepository.FindByID(context, actor.ID)
}
