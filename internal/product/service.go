// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/apperr"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/ctxutil"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/sec"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/validate"
	"github.com/Miguelch7/RLGC-producthuntnext/pkg/pagination"
	"github.com/Miguelch7/RLGC-producthuntnext/pkg/slice"
	"github.com/Miguelch7/RLGC-producthuntnext/pkg/textnorm"
)

// MsgImageInvalid is reported when the image reference cannot be resolved.
const MsgImageInvalid = "La imagen no es válida"

// # Service Layer

// Service orchestrates product creation and catalogue reads.
type Service struct {
	repository Repository
	images     ImageResolver
	logger     *slog.Logger
	now        func() time.Time
}

// NewService constructs a new [Service]. images may be nil, in which case
// the image field is stored as given.
func NewService(repository Repository, images ImageResolver, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		images:     images,
		logger:     logger,
		now:        time.Now,
	}
}

// # Creation

/*
NewCreationForm opens a creation form session for creator.

Description: The returned lifecycle validates with [CreationRules] and, once
clean, persists a new product owned by creator. created receives the stored
record (with its assigned key) after a successful commit.

Parameters:
  - creator: sec.Actor
  - created: func(*Product) (may be nil)

Returns:
  - *validate.Lifecycle: A fresh form session
*/
func (service *Service) NewCreationForm(creator sec.Actor, created func(*Product)) *validate.Lifecycle {
	return validate.NewLifecycle(InitialCreationValues(), CreationRules,
		func(context context.Context, values validate.Values) error {
			product, err := service.persist(context, creator, values)
			if err != nil {
				return err
			}
			if created != nil {
				created(product)
			}
			return nil
		})
}

/*
Create validates values and persists a new product owned by creator.

Description: Nothing is written unless every creation rule passes. A store
failure is returned unchanged and never retried.

Parameters:
  - context: context.Context
  - creator: sec.Actor (must be authenticated)
  - values: validate.Values (creation form)

Returns:
  - *Product: The stored record
  - error: VALIDATION_ERROR with field details, or the store's error
*/
func (service *Service) Create(context context.Context, creator sec.Actor, values validate.Values) (*Product, error) {
	var stored *Product
	form := service.NewCreationForm(creator, func(product *Product) { stored = product })
	form.Fill(values)

	committed, err := form.HandleSubmit(context)
	if err != nil {
		return nil, err
	}
	if !committed {
		return nil, form.ValidationErr()
	}

	return stored, nil
}

func (service *Service) persist(context context.Context, creator sec.Actor, values validate.Values) (*Product, error) {
	imageURL, err := service.resolveImage(values[FieldImageURL])
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(values[FieldName])
	product := &Product{
		Slug:        textnorm.Slug(name),
		Name:        name,
		Company:     strings.TrimSpace(values[FieldCompany]),
		URL:         strings.TrimSpace(values[FieldURL]),
		ImageURL:    imageURL,
		Description: strings.TrimSpace(values[FieldDescription]),
		Votes:       []string{},
		Comments:    []Comment{},
		CreatedAt:   service.now().UTC(),
		Creator:     creator,
	}

	if err := service.repository.Create(context, product); err != nil {
		return nil, err
	}

	ctxutil.GetLogger(context).InfoContext(context, "product_created",
		slog.String("product_id", product.ID),
		slog.String("creator_id", creator.ID),
	)

	return product, nil
}

// resolveImage accepts an absolute URL as is and resolves anything else as
// an uploaded asset reference.
func (service *Service) resolveImage(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || service.images == nil || urlPattern.MatchString(raw) {
		return raw, nil
	}

	resolved, err := service.images.Resolve(raw)
	if err != nil {
		service.logger.Warn("product_image_unresolved",
			slog.String("ref", raw),
			slog.Any("error", err),
		)
		return "", apperr.ValidationError("Validation failed",
			apperr.FieldError{Field: FieldImageURL, Message: MsgImageInvalid})
	}
	return resolved, nil
}

// # Catalogue Reads

/*
Get fetches a single product by key.

Returns:
  - *Product: The hydrated record
  - error: NOT_FOUND if the key does not resolve
*/
func (service *Service) Get(context context.Context, id string) (*Product, error) {
	return service.repository.Get(context, id)
}

// ListQuery carries listing options.
type ListQuery struct {
	Order  Order
	Search string
	Page   pagination.Params
}

/*
List returns one page of products.

Description: Search matches name or description, ignoring case and accents.
It runs over the ordered listing, so results keep the requested order.

Parameters:
  - context: context.Context
  - query: ListQuery

Returns:
  - []*Product: The requested page
  - pagination.Meta: Totals after search filtering
  - error: Store read failures
*/
func (service *Service) List(context context.Context, query ListQuery) ([]*Product, pagination.Meta, error) {
	products, err := service.repository.List(context, query.Order)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	if search := textnorm.Fold(query.Search); search != "" {
		products = slice.Filter(products, func(product *Product) bool {
			return textnorm.Contains(product.Name, search) || textnorm.Contains(product.Description, search)
		})
	}

	page, meta := pagination.Window(products, query.Page)
	return page, meta, nil
}
