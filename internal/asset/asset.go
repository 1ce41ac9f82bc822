// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package asset stores uploaded product images and resolves their references
into public URLs.

# Architecture

  - [Store]: filesystem storage under a single directory. Files are named
    by a generated key plus an extension derived from the sniffed content
    type, never from the client's file name.
  - [Handler]: the upload endpoint and the /media file server.

A reference is the stored file name. Product creation passes references
through [Store.Resolve] to obtain the URL saved on the record.
*/
package asset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/apperr"
	"github.com/Miguelch7/RLGC-producthuntnext/pkg/uuid"
)

// MediaPath is the URL prefix under which stored assets are served.
const MediaPath = "/media"

// sniffLength is how many bytes http.DetectContentType looks at.
const sniffLength = 512

// copyChunk is the write granularity, and so the progress granularity.
const copyChunk = 32 * 1024

// allowedTypes maps the accepted image content types to file extensions.
var allowedTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ErrInvalidReference is returned for references that cannot name a stored file.
var ErrInvalidReference = errors.New("asset: invalid reference")

// # Domain Entities

// Asset describes a stored file.
type Asset struct {
	Ref         string `json:"ref"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// Progress reports how far an upload has gone. Total is zero when the
// caller did not know the size up front.
type Progress struct {
	Written int64
	Total   int64
}

// Percent returns the completion percentage, or -1 when Total is unknown.
func (progress Progress) Percent() int {
	if progress.Total <= 0 {
		return -1
	}
	return int(progress.Written * 100 / progress.Total)
}

// ProgressFunc receives upload progress after every written chunk.
type ProgressFunc func(Progress)

// # Store

// Store keeps assets as files in one directory.
type Store struct {
	dir      string
	baseURL  string
	maxBytes int64
}

// NewStore prepares dir and returns a store publishing files under
// publicBaseURL + [MediaPath].
func NewStore(dir, publicBaseURL string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("asset: failed to prepare %s: %w", dir, err)
	}

	return &Store{
		dir:      dir,
		baseURL:  strings.TrimRight(publicBaseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

/*
Upload stores the content of body as a new asset.

Description: The content type is sniffed from the first bytes; only images
are accepted. The file is written to a temporary name and renamed once
complete, so a failed or cancelled upload leaves nothing behind. progress
is called after every chunk. Content beyond the store limit is rejected
while streaming.

Parameters:
  - context: context.Context (checked between chunks)
  - body: io.Reader
  - size: int64 (expected size for progress reporting, 0 if unknown)
  - progress: ProgressFunc (may be nil)

Returns:
  - Asset: The stored asset with its public URL
  - error: VALIDATION_ERROR for rejected content, or I/O failures
*/
func (store *Store) Upload(context context.Context, body io.Reader, size int64, progress ProgressFunc) (Asset, error) {
	head := make([]byte, sniffLength)
	n, err := io.ReadFull(body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Asset{}, fmt.Errorf("asset_upload_read_failed: %w", err)
	}
	head = head[:n]
	if len(head) == 0 {
		return Asset{}, apperr.ValidationError("Validation failed",
			apperr.FieldError{Field: FieldFile, Message: MsgEmptyFile})
	}

	contentType := http.DetectContentType(head)
	extension, ok := allowedTypes[contentType]
	if !ok {
		return Asset{}, apperr.ValidationError("Validation failed",
			apperr.FieldError{Field: FieldFile, Message: MsgNotAnImage})
	}

	ref := uuid.New() + extension
	temp, err := os.CreateTemp(store.dir, ".upload-*")
	if err != nil {
		return Asset{}, fmt.Errorf("asset_upload_create_failed: %w", err)
	}
	defer func() { _ = os.Remove(temp.Name()) }()

	written, err := store.copy(context, temp, io.MultiReader(bytes.NewReader(head), body), size, progress)
	if closeErr := temp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return Asset{}, err
	}

	if err := os.Rename(temp.Name(), filepath.Join(store.dir, ref)); err != nil {
		return Asset{}, fmt.Errorf("asset_upload_rename_failed: %w", err)
	}

	return Asset{
		Ref:         ref,
		URL:         store.url(ref),
		ContentType: contentType,
		Size:        written,
	}, nil
}

func (store *Store) copy(context context.Context, dst io.Writer, src io.Reader, size int64, progress ProgressFunc) (int64, error) {
	buffer := make([]byte, copyChunk)
	var written int64

	for {
		if err := context.Err(); err != nil {
			return written, err
		}

		n, readErr := src.Read(buffer)
		if n > 0 {
			written += int64(n)
			if store.maxBytes > 0 && written > store.maxBytes {
				return written, tooLarge(store.maxBytes)
			}
			if _, err := dst.Write(buffer[:n]); err != nil {
				return written, fmt.Errorf("asset_upload_write_failed: %w", err)
			}
			if progress != nil {
				progress(Progress{Written: written, Total: size})
			}
		}

		if errors.Is(readErr, io.EOF) {
			return written, nil
		}
		if readErr != nil {
			return written, fmt.Errorf("asset_upload_read_failed: %w", readErr)
		}
	}
}

/*
Resolve turns a stored reference into its public URL.

Returns:
  - string: The public URL
  - error: ErrInvalidReference for malformed or unknown references
*/
func (store *Store) Resolve(ref string) (string, error) {
	path, err := store.path(ref)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		return "", ErrInvalidReference
	}
	return store.url(ref), nil
}

// Open returns the stored file for ref. The caller closes it.
func (store *Store) Open(ref string) (*os.File, error) {
	path, err := store.path(ref)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrInvalidReference
		}
		return nil, fmt.Errorf("asset_open_failed: %w", err)
	}
	return file, nil
}

// path maps a reference onto the store directory. Only references this
// store could have generated are accepted, which also rules out traversal.
func (store *Store) path(ref string) (string, error) {
	extension := filepath.Ext(ref)
	if !knownExtension(extension) || !uuid.Valid(strings.TrimSuffix(ref, extension)) {
		return "", ErrInvalidReference
	}
	return filepath.Join(store.dir, ref), nil
}

func (store *Store) url(ref string) string {
	return store.baseURL + MediaPath + "/" + ref
}

func knownExtension(extension string) bool {
	for _, known := range allowedTypes {
		if known == extension {
			return true
		}
	}
	return false
}

func tooLarge(limit int64) error {
	return apperr.ValidationError("Validation failed",
		apperr.FieldError{Field: FieldFile, Message: fmt.Sprintf(MsgTooLarge, humanize.IBytes(uint64(limit)))})
}

// # Messages

const (
	FieldFile = "imagen"

	MsgMissingFile = "Selecciona una imagen"
	MsgEmptyFile   = "El archivo está vacío"
	MsgNotAnImage  = "El archivo debe ser una imagen"
	MsgTooLarge    = "La imagen supera el tamaño máximo de %s"
)
