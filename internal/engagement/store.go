// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package engagement implements voting, commenting and deletion on one product.

Core Responsibility:

  - Store: a per-session view of a single product record. Every mutation is
    written remotely first and then re-read, so the local snapshot only ever
    reflects what the remote store holds.
  - Guard: pure predicates deciding which actions an actor may take.
  - Handler: the HTTP surface, where guard denials become navigations.

# Concurrency

A [Store] belongs to one request and is not safe for concurrent use. Two
sessions voting at the same moment can each write a votes array built from the
same read, and the last write wins. That race is accepted: there is no
transaction or compare-and-set around the read-modify-write.
*/
package engagement

import (
	"context"
	"log/slog"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/apperr"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/ctxutil"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/validate"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/product"
	"github.com/Miguelch7/RLGC-producthuntnext/pkg/slice"
)

// MaxCommentLength bounds a comment body, in characters.
const MaxCommentLength = 1000

// # Store

// Store holds the latest known snapshot of one product.
type Store struct {
	repository product.Repository
	key        string

	record  *product.Product
	loaded  bool
	deleted bool
	stale   bool
}

// NewStore creates a store for the product key. Nothing is read until [Store.Load].
func NewStore(repository product.Repository, key string) *Store {
	return &Store{repository: repository, key: key}
}

// Key returns the product key this store tracks.
func (store *Store) Key() string {
	return store.key
}

/*
Load fetches the record from the remote store and replaces the snapshot.

Description: This is the only read path. A missing record leaves the store in
the absent state. Any other read failure keeps the previous state.

Returns:
  - *product.Product: A copy of the fresh snapshot
  - error: NOT_FOUND, or the store's read error
*/
func (store *Store) Load(context context.Context) (*product.Product, error) {
	record, err := store.repository.Get(context, store.key)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			store.markAbsent()
		}
		return nil, err
	}

	store.record = record
	store.loaded = true
	store.stale = false
	return record.Clone(), nil
}

/*
Vote adds actorID to the product's vote set.

Description: A vote already present is a successful no-op that performs no
write. Otherwise the full new vote set is written and the record is re-read.

Parameters:
  - context: context.Context
  - actorID: string (must be non-empty)

Returns:
  - *product.Product: The snapshot after the operation
  - error: UNAUTHORIZED, NOT_FOUND or REMOTE_WRITE_FAILED
*/
func (store *Store) Vote(context context.Context, actorID string) (*product.Product, error) {
	if actorID == "" {
		return nil, apperr.Unauthorized("Authentication required")
	}

	record, err := store.current(context)
	if err != nil {
		return nil, err
	}

	if record.HasVoted(actorID) {
		return record.Clone(), nil
	}

	votes := slice.Appended(record.Votes, actorID)
	if err := store.write(context, product.Patch{Votes: &votes}); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "product_voted",
		slog.String("product_id", store.key),
		slog.Int("votes", len(votes)),
	)

	return store.Load(context)
}

/*
AddComment appends a comment by author to the product's comment sequence.

Description: The message must be non-blank and at most [MaxCommentLength]
characters. The full new sequence is written and the record is re-read.

Parameters:
  - context: context.Context
  - author: sec.Actor (must have an id)
  - message: string

Returns:
  - *product.Product: The snapshot after the operation
  - error: UNAUTHORIZED, VALIDATION_ERROR, NOT_FOUND or REMOTE_WRITE_FAILED
*/
func (store *Store) AddComment(context context.Context, author sec.Actor, message string) (*product.Product, error) {
	if author.ID == "" {
		return nil, apperr.Unauthorized("Authentication required")
	}

	validator := &validate.Validator{}
	if err := validator.Required("mensaje", message).MaxLen("mensaje", message, MaxCommentLength).Err(); err != nil {
		return nil, err
	}

	record, err := store.current(context)
	if err != nil {
		return nil, err
	}

	comments := slice.Appended(record.Comments, product.Comment{
		Message:  message,
		UserID:   author.ID,
		UserName: author.DisplayName,
	})
	if err := store.write(context, product.Patch{Comments: &comments}); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "product_commented",
		slog.String("product_id", store.key),
		slog.Int("comments", len(comments)),
	)

	return store.Load(context)
}

/*
Delete removes the record from the remote store.

Description: Callers check [CanDelete] first; the store does not. On success
the store becomes absent and every later mutation returns NOT_FOUND.

Returns:
  - error: NOT_FOUND or REMOTE_WRITE_FAILED
*/
func (store *Store) Delete(context context.Context) error {
	if _, err := store.current(context); err != nil {
		return err
	}

	if err := store.repository.Delete(context, store.key); err != nil {
		return store.writeFailure(err)
	}

	store.markAbsent()
	store.deleted = true

	ctxutil.GetLogger(context).InfoContext(context, "product_deleted",
		slog.String("product_id", store.key),
	)

	return nil
}

// # Snapshot Access

// Snapshot returns a copy of the last loaded record. ok is false when the
// record is absent or nothing was loaded yet.
func (store *Store) Snapshot() (record *product.Product, ok bool) {
	if store.record == nil {
		return nil, false
	}
	return store.record.Clone(), true
}

// Current reports whether the snapshot matches the remote store as of the
// last operation. It is false while a write has landed but its re-read has not.
func (store *Store) Current() bool {
	return store.loaded && !store.stale
}

// Deleted reports whether this store deleted its record.
func (store *Store) Deleted() bool {
	return store.deleted
}

// # Internal Helpers

// current returns the loaded record. It reads the remote store on first use
// and whenever a landed write has not been re-read yet.
func (store *Store) current(context context.Context) (*product.Product, error) {
	if !store.loaded || store.stale {
		if _, err := store.Load(context); err != nil {
			return nil, err
		}
	}
	if store.record == nil {
		return nil, apperr.NotFound("Product")
	}
	return store.record, nil
}

// write sends patch and marks the snapshot stale until the next Load.
// A failed write leaves the snapshot untouched.
func (store *Store) write(context context.Context, patch product.Patch) error {
	if err := store.repository.Update(context, store.key, patch); err != nil {
		return store.writeFailure(err)
	}
	store.stale = true
	return nil
}

// writeFailure classifies a failed mutation. A record that vanished makes
// the store absent; anything unclassified becomes REMOTE_WRITE_FAILED.
func (store *Store) writeFailure(err error) error {
	if apperr.HasCode(err, apperr.CodeNotFound) {
		store.markAbsent()
		return err
	}
	if apperr.As(err) != nil {
		return err
	}
	return apperr.RemoteWriteFailure(err)
}

func (store *Store) markAbsent() {
	store.record = nil
	store.loaded = true
	store.stale = false
}
