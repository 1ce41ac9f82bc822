// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/apperr"
)

// # Form State

// Values maps a form field name to its current raw string value.
type Values map[string]string

// Clone returns an independent copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for field, value := range v {
		out[field] = value
	}
	return out
}

// Errors maps a form field name to a human-readable error message.
// An empty map means the form is valid.
type Errors map[string]string

// Empty reports whether no field failed.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Err converts the field errors into a VALIDATION_ERROR [apperr.AppError].
// Details are ordered by field name so responses are deterministic.
func (e Errors) Err() error {
	if e.Empty() {
		return nil
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	details := make([]apperr.FieldError, 0, len(fields))
	for _, field := range fields {
		details = append(details, apperr.FieldError{Field: field, Message: e[field]})
	}
	return apperr.ValidationError("Validation failed", details...)
}

// # Rules

// Rule checks a single field value and returns an error message, or "" when
// the value passes.
type Rule func(value string) string

// Rules is a tagged rule set: each field name maps to an ordered list of
// independent rules. The first failing rule of a field decides its message.
//
// Rules is the field validator of every form in the service. It is pure and
// holds no state between calls.
type Rules map[string][]Rule

// Validate runs every rule against values and returns the failing fields.
// A field absent from values is validated as the empty string.
func (rules Rules) Validate(values Values) Errors {
	errs := Errors{}
	for field, fieldRules := range rules {
		value := values[field]
		for _, rule := range fieldRules {
			if message := rule(value); message != "" {
				errs[field] = message
				break
			}
		}
	}
	return errs
}

// Pick returns the subset of rules for the named fields.
func (rules Rules) Pick(fields ...string) Rules {
	out := make(Rules, len(fields))
	for _, field := range fields {
		if fieldRules, ok := rules[field]; ok {
			out[field] = fieldRules
		}
	}
	return out
}

// Fields returns the sorted field names covered by the rule set.
func (rules Rules) Fields() []string {
	fields := make([]string, 0, len(rules))
	for field := range rules {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Merge combines rule sets. Rules for a field present in several sets are
// concatenated in argument order.
func Merge(sets ...Rules) Rules {
	out := Rules{}
	for _, set := range sets {
		for field, fieldRules := range set {
			out[field] = append(out[field], fieldRules...)
		}
	}
	return out
}

// # Rule Constructors

var (
	// emailRegex accepts the usual local@domain.tld shape.
	emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}$`)
)

// Required fails when the trimmed value is empty.
func Required(message string) Rule {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return message
		}
		return ""
	}
}

// Pattern fails when a non-empty value does not match re.
//
// Empty values pass so that a missing field is reported by [Required] with
// its own message, distinct from the malformed one.
func Pattern(re *regexp.Regexp, message string) Rule {
	return func(value string) string {
		if value != "" && !re.MatchString(value) {
			return message
		}
		return ""
	}
}

// Email fails when a non-empty value is not shaped like an email address.
func Email(message string) Rule {
	return Pattern(emailRegex, message)
}

// MinLen fails when a non-empty value has fewer than min characters.
func MinLen(min int, message string) Rule {
	return func(value string) string {
		if value != "" && utf8.RuneCountInString(value) < min {
			return message
		}
		return ""
	}
}

// MaxLen fails when the value has more than max characters.
func MaxLen(max int, message string) Rule {
	return func(value string) string {
		if utf8.RuneCountInString(value) > max {
			return message
		}
		return ""
	}
}
