// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package product provides the PostgreSQL implementation for product data access.

Collections (votos, comentarios) are JSONB columns rewritten wholesale on every
update, which mirrors the document store semantics the web client expects:
the last writer of a collection wins.
*/
package product

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/database/schema"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/dberr"
	"github.com/Miguelch7/RLGC-producthuntnext/pkg/uuid"
)

// # PostgreSQL Repository

// postgresRepository implements the [Repository] interface using pgx.
type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed product store.
func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (repository *postgresRepository) scan(row rowScanner) (*Product, error) {
	product := &Product{}
	var votesJSON, commentsJSON []byte

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
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeCollections(product, votesJSON, commentsJSON); err != nil {
		return nil, err
	}

	return product, nil
}

/*
Get retrieves a product by key.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Product: The hydrated record
  - error: NOT_FOUND for unknown or malformed keys
*/
func (repository *postgresRepository) Get(context context.Context, id string) (*Product, error) {
	if !uuid.Valid(id) {
		return nil, dberr.Wrap(dberr.ErrNoRows, "Product")
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.Product.SelectList(), schema.Product.Table, schema.Product.ID)

	product, err := repository.scan(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Product")
	}

	return product, nil
}

/*
List retrieves all products in the requested order.

Description: Popularity is computed in SQL from the length of the votes array
so no denormalized counter has to be kept in sync.
*/
func (repository *postgresRepository) List(context context.Context, order Order) ([]*Product, error) {
	orderBy := fmt.Sprintf("%s DESC", schema.Product.Creado)
	if order == OrderPopular {
		orderBy = fmt.Sprintf("jsonb_array_length(%s) DESC, %s DESC", schema.Product.Votos, schema.Product.Creado)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s`,
		schema.Product.SelectList(), schema.Product.Table, orderBy)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, fmt.Errorf("postgres_product_list_failed: %w", err)
	}
	defer rows.Close()

	products := make([]*Product, 0)
	for rows.Next() {
		product, err := repository.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres_product_scan_failed: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_product_rows_failed: %w", err)
	}

	return products, nil
}

/*
Create persists a new product and assigns its key.
*/
func (repository *postgresRepository) Create(context context.Context, product *Product) error {
	if product.ID == "" {
		product.ID = uuid.New()
	}

	votesJSON, commentsJSON, err := encodeCollections(product.Votes, product.Comments)
	if err != nil {
		return err
	}

	columns := schema.Product.Columns()
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		schema.Product.Table, strings.Join(columns, ", "), postgresPlaceholders(len(columns)))

	_, err = repository.pool.Exec(context, query,
		product.ID,
		product.Slug,
		product.Name,
		product.Company,
		product.URL,
		product.ImageURL,
		product.Description,
		votesJSON,
		commentsJSON,
		product.Creator.ID,
		product.Creator.DisplayName,
		product.CreatedAt,
	)

	return dberr.WrapWrite(err, "Product", "postgres_product_create")
}

/*
Update replaces the collections named by patch.

Returns:
  - error: NOT_FOUND when no row has this key
*/
func (repository *postgresRepository) Update(context context.Context, id string, patch Patch) error {
	if patch.Empty() {
		return nil
	}
	if !uuid.Valid(id) {
		return dberr.WrapWrite(dberr.ErrNoRows, "Product", "postgres_product_update")
	}

	var assignments []string
	var args []any

	if patch.Votes != nil {
		votesJSON, _, err := encodeCollections(*patch.Votes, nil)
		if err != nil {
			return err
		}
		args = append(args, votesJSON)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", schema.Product.Votos, len(args)))
	}

	if patch.Comments != nil {
		_, commentsJSON, err := encodeCollections(nil, *patch.Comments)
		if err != nil {
			return err
		}
		args = append(args, commentsJSON)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", schema.Product.Comentarios, len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $%d`,
		schema.Product.Table, strings.Join(assignments, ", "), schema.Product.ID, len(args))

	tag, err := repository.pool.Exec(context, query, args...)
	if err != nil {
		return dberr.WrapWrite(err, "Product", "postgres_product_update")
	}

	if tag.RowsAffected() == 0 {
		return dberr.WrapWrite(dberr.ErrNoRows, "Product", "postgres_product_update")
	}

	return nil
}

/*
Delete removes a product row.
*/
func (repository *postgresRepository) Delete(context context.Context, id string) error {
	if !uuid.Valid(id) {
		return dberr.WrapWrite(dberr.ErrNoRows, "Product", "postgres_product_delete")
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Product.Table, schema.Product.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.WrapWrite(err, "Product", "postgres_product_delete")
	}

	if tag.RowsAffected() == 0 {
		return dberr.WrapWrite(dberr.ErrNoRows, "Product", "postgres_product_delete")
	}

	return nil
}

// postgresPlaceholders returns "$1, $2, ..., $n".
func postgresPlaceholders(n int) string {
	placeholders := make([]string, n)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(placeholders, ", ")
}
