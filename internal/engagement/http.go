// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package engagement

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/constants"
	requestutil "github.com/Miguelch7/RLGC-producthuntnext/internal/platform/request"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/respond"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/product"
)

// ParamProductID is the URL parameter carrying the product key.
const ParamProductID = "productID"

// # Handler Implementation

// Handler serves one product's detail page and its engagement actions.
//
// # Navigation
//
// Guard denials are not errors. An anonymous actor is sent to the login page
// and a non-creator trying to delete is sent home, both with 303 See Other.
type Handler struct {
	repository product.Repository
	now        func() time.Time
}

// NewHandler constructs a new engagement [Handler].
func NewHandler(repository product.Repository) *Handler {
	return &Handler{repository: repository, now: time.Now}
}

// Routes returns the per-product routes. It is mounted under a path that
// defines the {productID} parameter.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.getDetail)
	router.Delete("/", handler.deleteProduct)
	router.Post("/votes", handler.vote)
	router.Post("/comments", handler.comment)

	return router
}

// store opens a fresh store for the product named in the URL.
func (handler *Handler) store(request *http.Request) *Store {
	return NewStore(handler.repository, requestutil.Param(request, ParamProductID))
}

// getDetail handles GET /products/{productID}
func (handler *Handler) getDetail(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.store(request).Load(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, NewDetail(record, requestutil.Actor(request), handler.now()))
}

// vote handles POST /products/{productID}/votes
func (handler *Handler) vote(writer http.ResponseWriter, request *http.Request) {
	actor := requestutil.Actor(request)
	if !CanVote(actor) {
		respond.SeeOther(writer, request, constants.PathLogin)
		return
	}

	record, err := handler.store(request).Vote(request.Context(), actor.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, NewDetail(record, actor, handler.now()))
}

type commentRequest struct {
	Message string `json:"mensaje"`
}

// comment handles POST /products/{productID}/comments
func (handler *Handler) comment(writer http.ResponseWriter, request *http.Request) {
	actor := requestutil.Actor(request)
	if !CanComment(actor) {
		respond.SeeOther(writer, request, constants.PathLogin)
		return
	}

	var body commentRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.store(request).AddComment(request.Context(), *actor, body.Message)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, NewDetail(record, actor, handler.now()))
}

// deleteProduct handles DELETE /products/{productID}
//
// Anonymous actors go to the login page. Anyone but the creator goes home
// without deleting anything. The creator deletes and then goes home.
func (handler *Handler) deleteProduct(writer http.ResponseWriter, request *http.Request) {
	actor := requestutil.Actor(request)
	if actor == nil {
		respond.SeeOther(writer, request, constants.PathLogin)
		return
	}

	store := handler.store(request)
	record, err := store.Load(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if !CanDelete(actor, record) {
		respond.SeeOther(writer, request, constants.PathHome)
		return
	}

	if err := store.Delete(request.Context()); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.SeeOther(writer, request, constants.PathHome)
}
