// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

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

// # SQLite Repository

// sqliteRepository implements the [Repository] interface on database/sql
// with the modernc SQLite driver. Timestamps are stored as UTC milliseconds
// and collections as JSON text.
type sqliteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository constructs a SQLite backed product store.
func NewSQLiteRepository(db *sql.DB) Repository {
	return &sqliteRepository{db: db}
}

func (repository *sqliteRepository) scan(row rowScanner) (*Product, error) {
	product := &Product{}
	var votesJSON, commentsJSON string
	var createdAt int64

	err := row.Scan(
		&product.ID,
		&product.Slug,
		&product.Name,
		&product.Company,
		&product.URL,
		&product.ImageURL,
		&product.Description,
		&votesJSON,
		&commentsJSON,
		&product.Creator.ID,
		&product.Creator.DisplayName,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	product.CreatedAt = time.UnixMilli(createdAt).UTC()
	if err := decodeCollections(product, []byte(votesJSON), []byte(commentsJSON)); err != nil {
		return nil, err
	}

	return product, nil
}

// Get retrieves a product by key.
func (repository *sqliteRepository) Get(context context.Context, id string) (*Product, error) {
	if !uuid.Valid(id) {
		return nil, dberr.Wrap(dberr.ErrNoRows, "Product")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		schema.Product.SelectList(), schema.Product.Table, schema.Product.ID)

	product, err := repository.scan(repository.db.QueryRowContext(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Product")
	}

	return product, nil
}

// List retrieves all products in the requested order.
func (repository *sqliteRepository) List(context context.Context, order Order) ([]*Product, error) {
	orderBy := fmt.Sprintf("%s DESC", schema.Product.Creado)
	if order == OrderPopular {
		orderBy = fmt.Sprintf("json_array_length(%s) DESC, %s DESC", schema.Product.Votos, schema.Product.Creado)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		schema.Product.SelectList(), schema.Product.Table, orderBy)

	rows, err := repository.db.QueryContext(context, query)
	if err != nil {
		return nil, fmt.Errorf("sqlite_product_list_failed: %w", err)
	}
	defer rows.Close()

	products := make([]*Product, 0)
	for rows.Next() {
		product, err := repository.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite_product_scan_failed: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite_product_rows_failed: %w", err)
	}

	return products, nil
}

// Create persists a new product and assigns its key.
func (repository *sqliteRepository) Create(context context.Context, product *Product) error {
	if product.ID == "" {
		product.ID = uuid.New()
	}

	votesJSON, commentsJSON, err := encodeCollections(product.Votes, product.Comments)
	if err != nil {
		return err
	}

	columns := schema.Product.Columns()
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		schema.Product.Table, strings.Join(columns, ", "), strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", "))

	_, err = repository.db.ExecContext(context, query,
		product.ID,
		product.Slug,
		product.Name,
		product.Company,
		product.URL,
		product.ImageURL,
		product.Description,
		string(votesJSON),
		string(commentsJSON),
		product.Creator.ID,
		product.Creator.DisplayName,
		product.CreatedAt.UTC().UnixMilli(),
	)

	return dberr.WrapWrite(err, "Product", "sqlite_product_create")
}

// Update replaces the collections named by patch.
func (repository *sqliteRepository) Update(context context.Context, id string, patch Patch) error {
	if patch.Empty() {
		return nil
	}
	if !uuid.Valid(id) {
		return dberr.WrapWrite(dberr.ErrNoRows, "Product", "sqlite_product_update")
	}

	var assignments []string
	var args []any

	if patch.Votes != nil {
		votesJSON, _, err := encodeCollections(*patch.Votes, nil)
		if err != nil {
			return err
		}
		assignments = append(assignments, schema.Product.Votos+" = ?")
		args = append(args, string(votesJSON))
	}

	if patch.Comments != nil {
		_, commentsJSON, err := encodeCollections(nil, *patch.Comments)
		if err != nil {
			return err
		}
		assignments = append(assignments, schema.Product.Comentarios+" = ?")
		args = append(args, string(commentsJSON))
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = ?`,
		schema.Product.Table, strings.Join(assignments, ", "), schema.Product.ID)

	return repository.execOne(context, "sqlite_product_update", query, args...)
}

// Delete removes a product row.
func (repository *sqliteRepository) Delete(context context.Context, id string) error {
	if !uuid.Valid(id) {
		return dberr.WrapWrite(dberr.ErrNoRows, "Product", "sqlite_product_delete")
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, schema.Product.Table, schema.Product.ID)
	return repository.execOne(context, "sqlite_product_delete", query, id)
}

// execOne runs a mutation that must touch exactly one row.
func (repository *sqliteRepository) execOne(context context.Context, action, query string, args ...any) error {
	result, err := repository.db.ExecContext(context, query, args...)
	if err != nil {
		return dberr.WrapWrite(err, "Product", action)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return dberr.WrapWrite(err, "Product", action)
	}

	if affected == 0 {
		return dberr.WrapWrite(dberr.ErrNoRows, "Product", action)
	}

	return nil
}
