// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/apperr"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/users/auth"
	"github.com/Miguelch7/RLGC-producthuntnext/pkg/uuid"
)

/*
TestSQLiteUserRepository covers create, both lookups and the unique email.
*/
func TestSQLiteUserRepository(t *testing.T) {
	ctx := context.Background()
	repository := newUsers(t)

	user := &auth.User{
		Email:        "ana@example.com",
		PasswordHash: "hash",
		DisplayName:  "Ana",
		CreatedAt:    time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repository.Create(ctx, user))
	require.True(t, uuid.Valid(user.ID))

	byEmail, err := repository.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user, byEmail)

	byID, err := repository.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, byID)

	err = repository.Create(ctx, &auth.User{Email: "ana@example.com", PasswordHash: "h", DisplayName: "Dup"})
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))

	_, err = repository.FindByEmail(ctx, "nobody@example.com")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = repository.FindByID(ctx, "not-a-uuid")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
