// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Miguelch7/RLGC-producthuntnext/internal/platform/validate"
	"github.com/Miguelch7/RLGC-producthuntnext/internal/product"
)

func validForm() validate.Values {
	return validate.Values{
		product.FieldName:        "Foo",
		product.FieldCompany:     "Acme",
		product.FieldURL:         "https://foo.dev",
		product.FieldDescription: "Una herramienta",
	}
}

/*
TestCreationRules covers every creation field, including the distinct messages
for a missing and a malformed URL.
*/
func TestCreationRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(validate.Values)
		want   validate.Errors
	}{
		{"valid", func(validate.Values) {}, validate.Errors{}},
		{"ftp_url", func(v validate.Values) { v[product.FieldURL] = "ftp://files.acme.com/x" }, validate.Errors{}},
		{"name_missing", func(v validate.Values) { v[product.FieldName] = "" }, validate.Errors{product.FieldName: product.MsgNameRequired}},
		{"company_missing", func(v validate.Values) { delete(v, product.FieldCompany) }, validate.Errors{product.FieldCompany: product.MsgCompanyRequired}},
		{"description_missing", func(v validate.Values) { v[product.FieldDescription] = " " }, validate.Errors{product.FieldDescription: product.MsgDescriptionRequired}},
		{"url_missing", func(v validate.Values) { v[product.FieldURL] = "" }, validate.Errors{product.FieldURL: product.MsgURLRequired}},
		{"url_malformed", func(v validate.Values) { v[product.FieldURL] = "not-a-url" }, validate.Errors{product.FieldURL: product.MsgURLMalformed}},
		{"url_with_space", func(v validate.Values) { v[product.FieldURL] = "https://foo .dev" }, validate.Errors{product.FieldURL: product.MsgURLMalformed}},
		{"all_missing", func(v validate.Values) {
			for field := range v {
				v[field] = ""
			}
		}, validate.Errors{
			product.FieldName:        product.MsgNameRequired,
			product.FieldCompany:     product.MsgCompanyRequired,
			product.FieldURL:         product.MsgURLRequired,
			product.FieldDescription: product.MsgDescriptionRequired,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validForm()
			tt.mutate(values)
			assert.Equal(t, tt.want, product.CreationRules.Validate(values))
		})
	}
}

/*
TestParseOrder defaults unknown values to newest first.
*/
func TestParseOrder(t *testing.T) {
	assert.Equal(t, product.OrderPopular, product.ParseOrder("populares"))
	assert.Equal(t, product.OrderRecent, product.ParseOrder("recientes"))
	assert.Equal(t, product.OrderRecent, product.ParseOrder(""))
	assert.Equal(t, product.OrderRecent, product.ParseOrder("whatever"))
}

/*
TestProduct_Clone returns independent collections.
*/
func TestProduct_Clone(t *testing.T) {
	original := &product.Product{Votes: []string{"u1"}, Comments: []product.Comment{{Message: "hola"}}}
	clone := original.Clone()

	clone.Votes[0] = "u9"
	clone.Comments[0].Message = "adiós"

	assert.Equal(t, "u1", original.Votes[0])
	assert.Equal(t, "hola", original.Comments[0].Message)
	assert.True(t, original.HasVoted("u1"))
	assert.False(t, original.HasVoted("u9"))
	assert.Nil(t, (*product.Product)(nil).Clone())
}
