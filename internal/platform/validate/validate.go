// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides the form validation toolkit of the service.
//
// # Architecture
//
//   - [Rules]: a tagged rule set (field name → independent rules). Pure.
//   - [Lifecycle]: a stateful form session running [Rules] on blur and on
//     submit, and committing only a clean form.
//   - [Validator]: a chainable helper for ad-hoc payloads (e.g. a comment body)
//     that do not warrant a full form session.
//
// Validation failures always become a VALIDATION_ERROR [apperr.AppError] at
// the edge. They never touch the backing stores.
package validate

import (
	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/apperr"
)

var (
	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level errors via a fluent, chainable API.
//
// # Concurrency
//
// Validator is not safe for concurrent use. A new instance must be created
// for every request/operation.
type Validator struct {
	errs []apperr.FieldError
}

// Check runs rules against value and records the first failure for field.
func (v *Validator) Check(field, value string, rules ...Rule) *Validator {
	for _, rule := range rules {
		if message := rule(value); message != "" {
			v.add(field, message)
			break
		}
	}
	return v
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	return v.Check(field, value, Required("This field is required"))
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	return v.Check(field, value, MaxLen(max, "Value is too long"))
}

// Err returns a VALIDATION_ERROR if any rule failed, or nil.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}
