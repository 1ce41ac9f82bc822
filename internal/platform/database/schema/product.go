package schema

import "strings"

// ProductTable represents the 'products' table
type ProductTable struct {
	Table         string
	ID            string
	Slug          string
	Nombre        string
	Empresa       string
	URL           string
	URLImagen     string
	Descripcion   string
	Votos         string
	Comentarios   string
	CreadorID     string
	CreadorNombre string
	Creado        string
}

// Product is the schema definition for products
var Product = ProductTable{
	Table:         "products",
	ID:            "id",
	Slug:          "slug",
	Nombre:        "nombre",
	Empresa:       "empresa",
	URL:           "url",
	URLImagen:     "urlimagen",
	Descripcion:   "descripcion",
	Votos:         "votos",
	Comentarios:   "comentarios",
	CreadorID:     "creadorid",
	CreadorNombre: "creadornombre",
	Creado:        "creado",
}

// Columns returns all standard column names, in scan order
func (t ProductTable) Columns() []string {
	return []string{
		t.ID, t.Slug, t.Nombre, t.Empresa, t.URL, t.URLImagen, t.Descripcion,
		t.Votos, t.Comentarios, t.CreadorID, t.CreadorNombre, t.Creado,
	}
}

// SelectList returns the columns joined for a SELECT clause
func (t ProductTable) SelectList() string {
	return strings.Join(t.Columns(), ", ")
}
