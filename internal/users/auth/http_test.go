// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/constants"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/testutil"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/users/auth"
)

type envelope struct {
	Data    map[string]any `json:"data"`
	Error   string         `json:"error"`
	Code    string         `json:"code"`
	Details []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"details"`
}

func call(t *testing.T, handler http.Handler, method, path, body string, actor *sec.Actor, cookies ...*http.Cookie) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request = testutil.WithActor(request, actor)
	for _, cookie := range cookies {
		request.AddCookie(cookie)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	var decoded envelope
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &decoded))
	}
	return recorder, decoded
}

func refreshCookie(recorder *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range recorder.Result().Cookies() {
		if cookie.Name == constants.RefreshTokenCookieName {
			return cookie
		}
	}
	return nil
}

/*
TestHandler_RegisterLoginRefresh walks the account flow over HTTP.
*/
func TestHandler_RegisterLoginRefresh(t *testing.T) {
	f := newFixture(t)
	handler := auth.NewHandler(f.service).Routes()

	recorder, body := call(t, handler, http.MethodPost, "/register",
		`{"nombre":"Ana","email":"ana@example.com","password":"secreto"}`, nil)
	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "Ana", body.Data["nombre"])
	assert.NotContains(t, recorder.Body.String(), "secreto")

	recorder, body = call(t, handler, http.MethodPost, "/login",
		`{"email":"ana@example.com","password":"secreto"}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, body.Data[auth.FieldAccessToken])
	cookie := refreshCookie(recorder)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	recorder, body = call(t, handler, http.MethodPost, "/refresh", "", nil, cookie)
	require.Equal(t, http.StatusOK, recorder.Code)
	rotated := refreshCookie(recorder)
	require.NotNil(t, rotated)
	assert.NotEqual(t, cookie.Value, rotated.Value)

	recorder, _ = call(t, handler, http.MethodPost, "/logout", "", nil, rotated)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Zero(t, f.sessions.count())
}

/*
TestHandler_Errors maps form, credential and session failures to status codes.
*/
func TestHandler_Errors(t *testing.T) {
	f := newFixture(t)
	handler := auth.NewHandler(f.service).Routes()

	recorder, body := call(t, handler, http.MethodPost, "/login", `{"email":"","password":""}`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	assert.Len(t, body.Details, 2)

	recorder, body = call(t, handler, http.MethodPost, "/login", `{"email":"a@b.co","password":"x"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "AUTHENTICATION_FAILED", body.Code)

	recorder, _ = call(t, handler, http.MethodPost, "/refresh", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	recorder, _ = call(t, handler, http.MethodPost, "/login", `not json`, nil)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

/*
TestHandler_Me requires an authenticated actor.
*/
func TestHandler_Me(t *testing.T) {
	f := newFixture(t)
	handler := auth.NewHandler(f.service).Routes()
	user := register(t, f, "ana@example.com")

	recorder, _ := call(t, handler, http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	actor := user.Actor()
	recorder, body := call(t, handler, http.MethodGet, "/me", "", &actor)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "ana@example.com", body.Data["email"])

	recorder, _ = call(t, handler, http.MethodPost, "/logout-all", "", &actor)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
