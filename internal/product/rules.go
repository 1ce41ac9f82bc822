// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"regexp"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/validate"
)

// urlPattern accepts ftp, http and https URLs without spaces or quotes.
var urlPattern = regexp.MustCompile(`^(ftp|http|https)://[^ "]+$`)

// Creation form messages, shown next to each field.
const (
	MsgNameRequired        = "El Nombre es obligatorio"
	MsgCompanyRequired     = "Nombre de Empresa es obligatorio"
	MsgURLRequired         = "La URL del producto es obligatoria"
	MsgURLMalformed        = "URL mal formateada o no válida"
	MsgDescriptionRequired = "Agrega una descripción a tu producto"
)

// CreationRules validates the product creation form.
var CreationRules = validate.Rules{
	FieldName:    {validate.Required(MsgNameRequired)},
	FieldCompany: {validate.Required(MsgCompanyRequired)},
	FieldURL: {
		validate.Required(MsgURLRequired),
		validate.Pattern(urlPattern, MsgURLMalformed),
	},
	FieldDescription: {validate.Required(MsgDescriptionRequired)},
}

// InitialCreationValues is the empty creation form.
func InitialCreationValues() validate.Values {
	return validate.Values{
		FieldName:        "",
		FieldCompany:     "",
		FieldURL:         "",
		FieldImageURL:    "",
		FieldDescription: "",
	}
}
