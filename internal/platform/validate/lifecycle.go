// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import "context"

// Validation is anything that turns form values into field errors.
// [Rules] is the standard implementation.
type Validation interface {
	Validate(values Values) Errors
}

// CommitFunc performs the action a form exists for (create a record, start a
// session). It only ever receives values that passed validation.
type CommitFunc func(ctx context.Context, values Values) error

// Lifecycle drives one form session: it owns the current values, the current
// field errors and a submitted flag, and gates the commit action behind a
// clean validation pass.
//
// # Concurrency
//
// A Lifecycle belongs to one form session and is not safe for concurrent use.
type Lifecycle struct {
	initial   Values
	values    Values
	errors    Errors
	submitted bool

	validation Validation
	commit     CommitFunc
}

// NewLifecycle starts a form session with the given initial values.
func NewLifecycle(initial Values, validation Validation, commit CommitFunc) *Lifecycle {
	return &Lifecycle{
		initial:    initial.Clone(),
		values:     initial.Clone(),
		errors:     Errors{},
		validation: validation,
		commit:     commit,
	}
}

// HandleChange records a new value for field. It does not validate.
func (lifecycle *Lifecycle) HandleChange(field, value string) {
	lifecycle.values[field] = value
}

// Fill applies HandleChange for every entry of values.
func (lifecycle *Lifecycle) Fill(values Values) {
	for field, value := range values {
		lifecycle.HandleChange(field, value)
	}
}

// HandleBlur re-validates the current values and replaces the stored errors,
// so a caller can surface field errors as the user leaves each field.
func (lifecycle *Lifecycle) HandleBlur() Errors {
	lifecycle.errors = lifecycle.validation.Validate(lifecycle.values)
	return lifecycle.Errors()
}

/*
HandleSubmit validates the current values and commits them when clean.

Description: Each call validates from scratch. With errors present nothing is
committed and the errors are stored. Otherwise the commit action runs exactly
once. Its error is returned as-is; the lifecycle never retries. A successful
commit ends the form session: values return to their initial state.

Returns:
  - bool: true when the commit action ran and succeeded
  - error: the commit action's error, if any
*/
func (lifecycle *Lifecycle) HandleSubmit(ctx context.Context) (bool, error) {
	lifecycle.submitted = true
	lifecycle.errors = lifecycle.validation.Validate(lifecycle.values)

	if !lifecycle.errors.Empty() {
		return false, nil
	}

	if err := lifecycle.commit(ctx, lifecycle.values.Clone()); err != nil {
		return false, err
	}

	lifecycle.values = lifecycle.initial.Clone()
	lifecycle.errors = Errors{}
	lifecycle.submitted = false
	return true, nil
}

// Values returns a copy of the current values.
func (lifecycle *Lifecycle) Values() Values {
	return lifecycle.values.Clone()
}

// Errors returns a copy of the current field errors.
func (lifecycle *Lifecycle) Errors() Errors {
	out := make(Errors, len(lifecycle.errors))
	for field, message := range lifecycle.errors {
		out[field] = message
	}
	return out
}

// Submitted reports whether a submit was attempted and has not yet committed.
func (lifecycle *Lifecycle) Submitted() bool {
	return lifecycle.submitted
}

// ValidationErr returns the stored errors as a VALIDATION_ERROR, or nil.
func (lifecycle *Lifecycle) ValidationErr() error {
	return lifecycle.errors.Err()
}
