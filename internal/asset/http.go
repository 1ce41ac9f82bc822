// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package asset

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/apperr"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/ctxutil"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/middleware"
	requestutil "github.com/Miguelch7/RLGC-producthuntnext/internal/platform/request"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/respond"
)

// ParamRef is the URL parameter naming a stored asset.
const ParamRef = "ref"

// multipartOverhead is the slack allowed on top of the file size for the
// multipart framing.
const multipartOverhead = 64 * 1024

// # Handler Implementation

// Handler exposes asset upload and serving.
type Handler struct {
	store *Store
}

// NewHandler constructs a new asset [Handler].
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Routes returns the upload API. Uploading requires an authenticated actor.
//
// # Endpoints
//   - POST / : multipart upload, file in the "imagen" field.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.upload)
	})

	return router
}

// MediaRoutes returns the public file server, mounted at [MediaPath].
//
// # Endpoints
//   - GET /{ref} : the stored file.
func (handler *Handler) MediaRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/{"+ParamRef+"}", handler.serve)
	return router
}

/*
Upload stores an image sent as multipart form data.

POST /api/v1/assets

Response:
  - 201: Asset: Reference and public URL
  - 400: VALIDATION_ERROR: Missing file, not an image or too large
  - 401: UNAUTHORIZED: Authentication required
*/
func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	ctx := request.Context()
	if handler.store.maxBytes > 0 {
		request.Body = http.MaxBytesReader(writer, request.Body, handler.store.maxBytes+multipartOverhead)
	}

	reader, err := request.MultipartReader()
	if err != nil {
		respond.Error(writer, request, missingFile())
		return
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			respond.Error(writer, request, missingFile())
			return
		}
		if part.FormName() != FieldFile {
			_ = part.Close()
			continue
		}

		logger := ctxutil.GetLogger(ctx)
		lastPercent := -1
		stored, err := handler.store.Upload(ctx, part, request.ContentLength, func(progress Progress) {
			// Content-Length covers the whole multipart body, so this is an estimate.
			if percent := progress.Percent(); percent/25 != lastPercent/25 {
				lastPercent = percent
				logger.DebugContext(ctx, "asset_upload_progress",
					slog.Int64("written", progress.Written),
					slog.Int("percent", percent),
				)
			}
		})
		_ = part.Close()

		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				err = tooLarge(handler.store.maxBytes)
			}
			respond.Error(writer, request, err)
			return
		}

		logger.InfoContext(ctx, "asset_uploaded",
			slog.String("ref", stored.Ref),
			slog.Int64("size", stored.Size),
			slog.String("uploader_id", requestutil.Actor(request).ID),
		)

		respond.Created(writer, stored)
		return
	}
}

// serve handles GET /media/{ref}.
func (handler *Handler) serve(writer http.ResponseWriter, request *http.Request) {
	file, err := handler.store.Open(requestutil.Param(request, ParamRef))
	if err != nil {
		if errors.Is(err, ErrInvalidReference) {
			err = apperr.NotFound("Asset")
		}
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	writer.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	http.ServeContent(writer, request, info.Name(), info.ModTime(), file)
}

func missingFile() error {
	return apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: FieldFile, Message: MsgMissingFile})
}
