// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Miguelch7/RLGC-producthuntnext/pkg/textnorm"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cafetería", "cafeteria"},
		{"  Árbol   de  Navidad ", "arbol de navidad"},
		{"PLAIN", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Fold(tt.in))
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, textnorm.Contains("La Mejor Aplicación", "aplicacion"))
	assert.True(t, textnorm.Contains("cualquier cosa", ""))
	assert.False(t, textnorm.Contains("Tienda", "vinos"))
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Producto Genial", "producto-genial"},
		{"¡Ñandú & Co.!", "nandu-co"},
		{"---", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Slug(tt.in))
		})
	}
}
