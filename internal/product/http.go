// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/constants"
	requestutil "github.com/Miguelch7/RLGC-producthuntnext/internal/platform/request"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/respond"
	"github.com/Miguelch7/RLGC-producthuntnext/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for the product catalogue.
type Handler struct {
	service *Service
}

// NewHandler constructs a new product [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the catalogue endpoints. records serves
// everything under a single product key (detail and engagement).
func (handler *Handler) Routes(records http.Handler) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listProducts)
	router.Post("/", handler.createProduct)

	if records != nil {
		router.Mount("/{productID}", records)
	}

	return router
}

// listProducts handles GET /products?orden=&q=&page=&limit=
func (handler *Handler) listProducts(writer http.ResponseWriter, request *http.Request) {
	query := ListQuery{
		Order:  ParseOrder(request.URL.Query().Get("orden")),
		Search: strings.TrimSpace(request.URL.Query().Get("q")),
		Page:   pagination.FromRequest(request),
	}

	products, meta, err := handler.service.List(request.Context(), query)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, meta)
}

// createProduct handles POST /products. Anonymous visitors are sent to log in.
func (handler *Handler) createProduct(writer http.ResponseWriter, request *http.Request) {
	actor := requestutil.Actor(request)
	if actor == nil {
		respond.SeeOther(writer, request, constants.PathLogin)
		return
	}

	values, err := requestutil.DecodeValues(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.Create(request.Context(), *actor, values)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, product)
}
