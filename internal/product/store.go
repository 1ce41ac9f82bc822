// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import "context"

// # Product Data Access

// Repository defines the data access contract for product records.
//
// Failed reads of a missing key return an apperr NOT_FOUND. Failed mutations
// return NOT_FOUND for a missing key and REMOTE_WRITE_FAILED otherwise.
type Repository interface {

	/*
		Get returns the product stored under id.

		Parameters:
		  - context: context.Context
		  - id: string (record key)

		Returns:
		  - *Product: The hydrated record
		  - error: NOT_FOUND if no record has this key
	*/
	Get(context context.Context, id string) (*Product, error)

	/*
		List returns every product in the requested order.

		Parameters:
		  - context: context.Context
		  - order: Order

		Returns:
		  - []*Product: All records
		  - error: Database retrieval failures
	*/
	List(context context.Context, order Order) ([]*Product, error)

	/*
		Create persists a new product. The store assigns product.ID.

		Parameters:
		  - context: context.Context
		  - product: *Product

		Returns:
		  - error: REMOTE_WRITE_FAILED on storage failure
	*/
	Create(context context.Context, product *Product) error

	/*
		Update replaces the collections named by patch on the record id.

		Parameters:
		  - context: context.Context
		  - id: string
		  - patch: Patch

		Returns:
		  - error: NOT_FOUND or REMOTE_WRITE_FAILED
	*/
	Update(context context.Context, id string, patch Patch) error

	/*
		Delete removes the record id.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: NOT_FOUND or REMOTE_WRITE_FAILED
	*/
	Delete(context context.Context, id string) error
}

// # Asset Resolution

// ImageResolver turns an uploaded asset reference into a public URL.
type ImageResolver interface {
	Resolve(ref string) (string, error)
}
