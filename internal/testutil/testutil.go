// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package testutil provides in-memory fakes shared by package tests.

Nothing here is imported by production code.
*/
package testutil

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/apperr"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/ctxutil"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/product"
	"github.com/Miguelch7/RLGC-producthuntnext/pkg/uuid"
)

// # Logging

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// # Identity

// WithActor returns request carrying actor as the current identity.
// A nil actor leaves the request anonymous.
func WithActor(request *http.Request, actor *sec.Actor) *http.Request {
	if actor == nil {
		return request
	}
	return request.WithContext(ctxutil.WithActor(request.Context(), *actor))
}

// # Product Store

// ProductRepository is an in-memory product.Repository with failure injection.
type ProductRepository struct {
	mu      sync.Mutex
	records map[string]*product.Product

	// FailReads, when set, is returned by Get and List.
	FailReads error
	// FailWrites, when set, is returned by Create, Update and Delete.
	FailWrites error

	Reads  int
	Writes int
}

// NewProductRepository creates an empty store.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{records: make(map[string]*product.Product)}
}

// Seed stores a copy of record, assigning a key when it has none, and
// returns the key.
func (repository *ProductRepository) Seed(record product.Product) string {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	repository.records[record.ID] = record.Clone()
	return record.ID
}

// Get implements product.Repository.
func (repository *ProductRepository) Get(_ context.Context, id string) (*product.Product, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.Reads++
	if repository.FailReads != nil {
		return nil, repository.FailReads
	}

	record, ok := repository.records[id]
	if !ok {
		return nil, apperr.NotFound("Product")
	}
	return record.Clone(), nil
}

// List implements product.Repository.
func (repository *ProductRepository) List(_ context.Context, order product.Order) ([]*product.Product, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.Reads++
	if repository.FailReads != nil {
		return nil, repository.FailReads
	}

	products := make([]*product.Product, 0, len(repository.records))
	for _, record := range repository.records {
		products = append(products, record.Clone())
	}

	slices.SortFunc(products, func(a, b *product.Product) int {
		if order == product.OrderPopular && a.VoteCount() != b.VoteCount() {
			return b.VoteCount() - a.VoteCount()
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return products, nil
}

// Create implements product.Repository.
func (repository *ProductRepository) Create(_ context.Context, record *product.Product) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.Writes++
	if repository.FailWrites != nil {
		return repository.FailWrites
	}

	if record.ID == "" {
		record.ID = uuid.New()
	}
	repository.records[record.ID] = record.Clone()
	return nil
}

// Update implements product.Repository.
func (repository *ProductRepository) Update(_ context.Context, id string, patch product.Patch) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.Writes++
	if repository.FailWrites != nil {
		return repository.FailWrites
	}

	record, ok := repository.records[id]
	if !ok {
		return apperr.NotFound("Product")
	}
	if patch.Votes != nil {
		record.Votes = slices.Clone(*patch.Votes)
	}
	if patch.Comments != nil {
		record.Comments = slices.Clone(*patch.Comments)
	}
	return nil
}

// Delete implements product.Repository.
func (repository *ProductRepository) Delete(_ context.Context, id string) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.Writes++
	if repository.FailWrites != nil {
		return repository.FailWrites
	}

	if _, ok := repository.records[id]; !ok {
		return apperr.NotFound("Product")
	}
	delete(repository.records, id)
	return nil
}

// Stored returns a copy of the stored record, bypassing counters and failures.
func (repository *ProductRepository) Stored(id string) (*product.Product, bool) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	record, ok := repository.records[id]
	return record.Clone(), ok
}
