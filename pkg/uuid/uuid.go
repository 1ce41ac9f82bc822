// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered unique identifiers for record keys.

Keys are Version 7 values: naturally ordered by creation time, which keeps
B-tree indexes compact in PostgreSQL and makes "newest first" listings cheap.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {
	id, err := uuid.NewV7()

	// entropy failure is an unrecoverable system-level error
	if err != nil {
		panic("uuid: failed to generate UUIDv7: " + err.Error())
	}

	return id.String()
}

// # Validation

// Valid reports whether s is a well-formed UUID of any version.
// Record lookups use it to answer NOT_FOUND without a round-trip.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
