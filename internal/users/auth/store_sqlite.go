// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/database/schema"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/dberr"
	"github.com/Miguelch7/RLGC-producthuntnext/pkg/uuid"
)

// # SQLite User Repository

// SQLiteUserRepository implements the [UserRepository] interface on the
// embedded SQLite store. Timestamps are stored as UTC milliseconds.
type SQLiteUserRepository struct {
	db *sql.DB
}

// NewSQLiteUserRepository creates a SQLite backed [UserRepository].
func NewSQLiteUserRepository(db *sql.DB) *SQLiteUserRepository {
	return &SQLiteUserRepository{db: db}
}

// Create persists a new user record and assigns its key.
func (repository *SQLiteUserRepository) Create(context context.Context, user *User) error {
	if user.ID == "" {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?)`,
		schema.User.Table, strings.Join(schema.User.Columns(), ", "))

	_, err := repository.db.ExecContext(context, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
		user.CreatedAt.UTC().UnixMilli(),
	)

	return dberr.WrapWrite(err, "User", "sqlite_user_repo_create")
}

// FindByEmail retrieves a user record by email.
func (repository *SQLiteUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		schema.User.SelectList(), schema.User.Table, schema.User.Email)

	return repository.findOne(context, query, email)
}

// FindByID retrieves a user record by key.
func (repository *SQLiteUserRepository) FindByID(context context.Context, id string) (*User, error) {
	if !uuid.Valid(id) {
		return nil, dberr.Wrap(dberr.ErrNoRows, "User")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		schema.User.SelectList(), schema.User.Table, schema.User.ID)

	return repository.findOne(context, query, id)
}

func (repository *SQLiteUserRepository) findOne(context context.Context, query string, arg any) (*User, error) {
	user := &User{}
	var createdAt int64

	err := repository.db.QueryRowContext(context, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&createdAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	user.CreatedAt = time.UnixMilli(createdAt).UTC()
	return user, nil
}
