// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package asset_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/asset"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/testutil"
)

func newRouter(store *asset.Store) http.Handler {
	handler := asset.NewHandler(store)
	router := chi.NewRouter()
	router.Mount("/assets", handler.Routes())
	router.Mount(asset.MediaPath, handler.MediaRoutes())
	return router
}

func multipartBody(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, "logo.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

/*
TestHandler_UploadAndServe uploads over HTTP and fetches the file back.
*/
func TestHandler_UploadAndServe(t *testing.T) {
	store, _ := newStore(t, 1<<20)
	router := newRouter(store)
	content := pngBytes(2048)

	body, contentType := multipartBody(t, asset.FieldFile, content)
	request := httptest.NewRequest(http.MethodPost, "/assets", body)
	request.Header.Set("Content-Type", contentType)
	request = testutil.WithActor(request, &sec.Actor{ID: "u1"})
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())

	var created struct {
		Data asset.Asset `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, int64(len(content)), created.Data.Size)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, asset.MediaPath+"/"+created.Data.Ref, nil))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, content, recorder.Body.Bytes())
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
}

/*
TestHandler_Rejects covers anonymous uploads, a missing file field and
unknown media.
*/
func TestHandler_Rejects(t *testing.T) {
	store, _ := newStore(t, 1<<20)
	router := newRouter(store)

	body, contentType := multipartBody(t, asset.FieldFile, pngBytes(64))
	request := httptest.NewRequest(http.MethodPost, "/assets", body)
	request.Header.Set("Content-Type", contentType)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	body, contentType = multipartBody(t, "other", pngBytes(64))
	request = httptest.NewRequest(http.MethodPost, "/assets", body)
	request.Header.Set("Content-Type", contentType)
	request = testutil.WithActor(request, &sec.Actor{ID: "u1"})
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, asset.MediaPath+"/nope.png", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
