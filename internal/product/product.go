// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package product defines the product record and its catalogue operations.

A product is a document-shaped record: scalar metadata written once at
creation, plus two collections that engagement rewrites wholesale (the set of
voter ids and the ordered sequence of comments).

Core Responsibility:

  - Catalogue: Creation through the validated creation form, listing, search.
  - Storage: A [Repository] contract with PostgreSQL and SQLite drivers.

Engagement on an existing product (votes, comments, deletion) lives in the
engagement package, which builds on the [Repository] defined here.
*/
package product

import (
	"slices"
	"time"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
)

// # Form Fields

// Creation form field names. They double as the JSON keys of the record.
const (
	FieldName        = "nombre"
	FieldCompany     = "empresa"
	FieldURL         = "url"
	FieldImageURL    = "urlimagen"
	FieldDescription = "descripcion"
)

// # Domain Entities

// Comment is one entry of a product's comment sequence.
type Comment struct {
	Message  string `json:"mensaje"`
	UserID   string `json:"usuarioId"`
	UserName string `json:"usuarioNombre"`
}

// Product is a product record as stored remotely.
type Product struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"nombre"`
	Company     string    `json:"empresa"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"urlimagen"`
	Description string    `json:"descripcion"`
	Votes       []string  `json:"votos"`
	Comments    []Comment `json:"comentarios"`
	CreatedAt   time.Time `json:"creado"`
	Creator     sec.Actor `json:"creador"`
}

// VoteCount returns the number of distinct voters.
func (p *Product) VoteCount() int {
	return len(p.Votes)
}

// HasVoted reports whether actorID is already in the vote set.
func (p *Product) HasVoted(actorID string) bool {
	return slices.Contains(p.Votes, actorID)
}

// Clone returns a deep copy, so callers may hold snapshots that later
// writes never mutate.
func (p *Product) Clone() *Product {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Votes = slices.Clone(p.Votes)
	clone.Comments = slices.Clone(p.Comments)
	if clone.Votes == nil {
		clone.Votes = []string{}
	}
	if clone.Comments == nil {
		clone.Comments = []Comment{}
	}
	return &clone
}

// # Partial Updates

// Patch names the collections an update replaces. A nil field is left as is;
// a non-nil field overwrites the stored collection entirely.
type Patch struct {
	Votes    *[]string
	Comments *[]Comment
}

// Empty reports whether the patch changes nothing.
func (patch Patch) Empty() bool {
	return patch.Votes == nil && patch.Comments == nil
}

// # Listing

// Order selects how listings are sorted.
type Order string

const (
	// OrderRecent lists the newest products first.
	OrderRecent Order = "recientes"

	// OrderPopular lists the most voted products first, newest breaking ties.
	OrderPopular Order = "populares"
)

// ParseOrder maps a query value onto an [Order], defaulting to [OrderRecent].
func ParseOrder(raw string) Order {
	if Order(raw) == OrderPopular {
		return OrderPopular
	}
	return OrderRecent
}
