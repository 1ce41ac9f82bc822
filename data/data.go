// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package data embeds the PostgreSQL schema migrations so the server binary
// can migrate without a checkout of this directory.
package data

import "embed"

// Migrations holds the golang-migrate files under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsRoot is the directory of [Migrations] holding the files.
const MigrationsRoot = "migrations"
