package entity

import "time"

// AtributoDef define un atributo dentro de una categoría del rubro.
// Valores solo tiene sentido cuando Tipo es "lista".
type AtributoDef struct {
	Nombre  string   `json:"nombre"`
	Tipo    string   `json:"tipo"` // "lista" | "texto"
	Valores []string `json:"valores,omitempty"`
}

// Categoria agrupa atributos dentro de un rubro.
type Categoria struct {
	Nombre    string        `json:"nombre"`
	Atributos []AtributoDef `json:"atributos"`
}

// Rubric es la raíz de la taxonomía: nombre único y categorías ordenadas.
// La contención es estricta: el rubro es dueño de sus categorías y estas de
// sus atributos; no se comparten entre rubros.
type Rubric struct {
	ID         string
	Nombre     string
	Categorias []Categoria
	CreatedAt  time.Time
}
