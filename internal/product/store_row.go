// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"encoding/json"
	"fmt"
)

// rowScanner is satisfied by pgx.Row, pgx.Rows, *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// encodeCollections serializes the collections stored as JSON columns.
func encodeCollections(votes []string, comments []Comment) ([]byte, []byte, error) {
	if votes == nil {
		votes = []string{}
	}
	if comments == nil {
		comments = []Comment{}
	}

	votesJSON, err := json.Marshal(votes)
	if err != nil {
		return nil, nil, fmt.Errorf("encode_votes: %w", err)
	}

	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return nil, nil, fmt.Errorf("encode_comments: %w", err)
	}

	return votesJSON, commentsJSON, nil
}

// decodeCollections fills the product collections from their JSON columns.
func decodeCollections(product *Product, votesJSON, commentsJSON []byte) error {
	product.Votes = []string{}
	product.Comments = []Comment{}

	if len(votesJSON) > 0 {
		if err := json.Unmarshal(votesJSON, &product.Votes); err != nil {
			return fmt.Errorf("decode_votes: %w", err)
		}
	}

	if len(commentsJSON) > 0 {
		if err := json.Unmarshal(commentsJSON, &product.Comments); err != nil {
			return fmt.Errorf("decode_comments: %w", err)
		}
	}

	return nil
}
