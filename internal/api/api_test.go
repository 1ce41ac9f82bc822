// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/api"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/engagement"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/product"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/testutil"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/users/auth"
)

type stubVerifier struct{}

func (stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token == "good" {
		return &sec.AuthClaims{UserID: "u1", DisplayName: "Ana"}, nil
	}
	return nil, errors.New("bad token")
}

type stubConfig struct{}

func (stubConfig) IsDevelopment() bool { return true }
func (stubConfig) Origins() []string   { return nil }

func newRouter(t *testing.T, repository product.Repository, deps api.HealthDependencies) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	liveness, readiness := api.NewHealthHandlers(deps, testutil.Logger())
	return api.NewRouter(ctx, stubConfig{}, testutil.Logger(), stubVerifier{}, api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       auth.NewHandler(auth.NewService(nil, nil, nil)),
		Product:    product.NewHandler(product.NewService(repository, nil, testutil.Logger())),
		Engagement: engagement.NewHandler(repository),
		Forms:      api.NewFormsHandler(api.DefaultForms()),
	})
}

func do(router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestForms_Validate runs blur-time validation for every registered form.
*/
func TestForms_Validate(t *testing.T) {
	router := newRouter(t, testutil.NewProductRepository(), api.HealthDependencies{})

	tests := []struct {
		name   string
		form   string
		body   string
		valid  bool
		fields []string
	}{
		{"product_empty", "producto", `{}`, false, []string{"nombre", "empresa", "url", "descripcion"}},
		{"product_bad_url", "producto", `{"nombre":"a","empresa":"b","url":"nope","descripcion":"c"}`, false, []string{"url"}},
		{"product_valid", "producto", `{"nombre":"a","empresa":"b","url":"https://a.b","descripcion":"c"}`, true, nil},
		{"login_bad_email", "login", `{"email":"x","password":"p"}`, false, []string{"email"}},
		{"register_short_password", "registro", `{"nombre":"a","email":"a@b.co","password":"123"}`, false, []string{"password"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := do(router, http.MethodPost, "/api/v1/forms/"+tt.form+"/validate", tt.body, "")
			require.Equal(t, http.StatusOK, recorder.Code)

			var body struct {
				Data api.FormState `json:"data"`
			}
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
			assert.Equal(t, tt.valid, body.Data.Valid)

			fields := make([]string, 0, len(body.Data.Errors))
			for field := range body.Data.Errors {
				fields = append(fields, field)
			}
			assert.ElementsMatch(t, tt.fields, fields)
		})
	}

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodPost, "/api/v1/forms/otro/validate", `{}`, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodPost, "/api/v1/forms/login/validate", `[`, "").Code)
}

/*
TestHealth reports readiness per dependency.
*/
func TestHealth(t *testing.T) {
	healthy := newRouter(t, testutil.NewProductRepository(), api.HealthDependencies{
		Database: api.Check{Name: "sqlite", Ping: func(context.Context) error { return nil }},
		Cache:    api.Check{Name: "redis", Ping: func(context.Context) error { return nil }},
	})
	assert.Equal(t, http.StatusOK, do(healthy, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, do(healthy, http.MethodGet, "/ready", "", "").Code)

	degraded := newRouter(t, testutil.NewProductRepository(), api.HealthDependencies{
		Database: api.Check{Name: "sqlite", Ping: func(context.Context) error { return nil }},
		Cache:    api.Check{Name: "redis", Ping: func(context.Context) error { return errors.New("down") }},
	})
	recorder := do(degraded, http.MethodGet, "/ready", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"degraded"`)
}

/*
TestRouter_ProductFlow drives creation, vote and delete through the full
middleware chain with bearer tokens.
*/
func TestRouter_ProductFlow(t *testing.T) {
	repository := testutil.NewProductRepository()
	router := newRouter(t, repository, api.HealthDependencies{})
	form := `{"nombre":"Foo","empresa":"Acme","url":"https://foo.dev","descripcion":"d"}`

	recorder := do(router, http.MethodPost, "/api/v1/products", form, "")
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/login", recorder.Header().Get("Location"))

	assert.Equal(t, http.StatusUnauthorized, do(router, http.MethodPost, "/api/v1/products", form, "forged").Code)

	recorder = do(router, http.MethodPost, "/api/v1/products", form, "good")
	require.Equal(t, http.StatusCreated, recorder.Code)
	var created struct {
		Data product.Product `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, "u1", created.Data.Creator.ID)

	path := "/api/v1/products/" + created.Data.ID
	assert.Equal(t, http.StatusOK, do(router, http.MethodPost, path+"/votes", "", "good").Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodPost, path+"/votes", "", "good").Code)

	stored, ok := repository.Stored(created.Data.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"u1"}, stored.Votes)

	recorder = do(router, http.MethodDelete, path, "", "good")
	assert.Equal(t, http.StatusSeeOther, recorder.Code)
	assert.Equal(t, "/", recorder.Header().Get("Location"))
	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, path, "", "").Code)
}
