// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/apperr"
	requestutil "github.com/Miguelch7/RLGC-producthuntnext/internal/platform/request"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/respond"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/validate"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/product"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/users/auth"
)

// ParamForm is the URL parameter naming a form.
const ParamForm = "form"

// Form names accepted by the validation endpoint.
const (
	FormProduct  = "producto"
	FormLogin    = "login"
	FormRegister = "registro"
)

// Form describes a client form: its empty state and its rule set.
type Form struct {
	Initial func() validate.Values
	Rules   validate.Validation
}

// DefaultForms returns the forms the web client renders.
func DefaultForms() map[string]Form {
	return map[string]Form{
		FormProduct:  {Initial: product.InitialCreationValues, Rules: product.CreationRules},
		FormLogin:    {Initial: auth.InitialLoginValues, Rules: auth.LoginRules},
		FormRegister: {Initial: auth.InitialRegisterValues, Rules: auth.RegisterRules},
	}
}

// FormsHandler serves progressive, per-field validation so a client can show
// errors as the user leaves each field, before anything is submitted.
type FormsHandler struct {
	forms map[string]Form
}

// NewFormsHandler constructs a [FormsHandler] over forms.
func NewFormsHandler(forms map[string]Form) *FormsHandler {
	return &FormsHandler{forms: forms}
}

// Routes returns the form validation routes.
//
// # Endpoints
//   - POST /{form}/validate : blur-time validation of the posted values.
func (handler *FormsHandler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/{"+ParamForm+"}/validate", handler.validate)
	return router
}

// FormState is the result of a blur-time validation.
type FormState struct {
	Valid  bool            `json:"valido"`
	Errors validate.Errors `json:"errores"`
}

/*
Validate runs a form's rules over the posted values without committing.

POST /api/v1/forms/{form}/validate

Request:
  - Body: flat JSON object of field values (missing fields count as empty)

Response:
  - 200: FormState: current field errors
  - 400: ErrInvalidJSON
  - 404: NOT_FOUND: Unknown form
*/
func (handler *FormsHandler) validate(writer http.ResponseWriter, request *http.Request) {
	form, ok := handler.forms[requestutil.Param(request, ParamForm)]
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Form"))
		return
	}

	values, err := requestutil.DecodeValues(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	lifecycle := validate.NewLifecycle(form.Initial(), form.Rules, nil)
	lifecycle.Fill(values)
	errs := lifecycle.HandleBlur()

	respond.OK(writer, FormState{Valid: errs.Empty(), Errors: errs})
}
