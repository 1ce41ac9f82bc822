// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package engagement

import (
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/product"
)

// # Authorization Guard
//
// Pure predicates deciding which engagement actions the current actor may
// take. A nil actor is an anonymous visitor. Empty ids never authorize.

// CanVote reports whether actor may vote. Any authenticated actor may.
func CanVote(actor *sec.Actor) bool {
	return actor != nil && actor.ID != ""
}

// CanComment reports whether actor may comment. Any authenticated actor may.
func CanComment(actor *sec.Actor) bool {
	return actor != nil && actor.ID != ""
}

// CanDelete reports whether actor created record and may therefore delete it.
func CanDelete(actor *sec.Actor, record *product.Product) bool {
	if actor == nil || record == nil || actor.ID == "" {
		return false
	}
	return actor.ID == record.Creator.ID
}

// IsCreator reports whether authorID is the creator of record. It only
// annotates comments for display and grants nothing.
func IsCreator(record *product.Product, authorID string) bool {
	if record == nil || authorID == "" {
		return false
	}
	return record.Creator.ID == authorID
}
