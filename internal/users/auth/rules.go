// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "github.com/Miguelch7/RLGC-producthuntnext/internal/platform/validate"

// # Form Messages

const (
	MsgNameRequired     = "El Nombre es obligatorio"
	MsgEmailRequired    = "El Email es Obligatorio"
	MsgEmailInvalid     = "Email no válido"
	MsgPasswordRequired = "El password es obligatorio"
	MsgPasswordShort    = "El password debe ser de al menos 6 caracteres"
)

// # Rule Sets

// LoginRules validates the login form.
var LoginRules = validate.Rules{
	FieldEmail: {
		validate.Required(MsgEmailRequired),
		validate.Email(MsgEmailInvalid),
	},
	FieldPassword: {
		validate.Required(MsgPasswordRequired),
	},
}

// RegisterRules validates the account registration form. It reuses the
// login email rule and tightens the password.
var RegisterRules = validate.Merge(
	LoginRules.Pick(FieldEmail),
	validate.Rules{
		FieldName: {
			validate.Required(MsgNameRequired),
		},
		FieldPassword: {
			validate.Required(MsgPasswordRequired),
			validate.MinLen(PasswordMinLength, MsgPasswordShort),
		},
	},
)

// InitialLoginValues returns the empty login form.
func InitialLoginValues() validate.Values {
	return validate.Values{FieldEmail: "", FieldPassword: ""}
}

// InitialRegisterValues returns the empty registration form.
func InitialRegisterValues() validate.Values {
	return validate.Values{FieldName: "", FieldEmail: "", FieldPassword: ""}
}
