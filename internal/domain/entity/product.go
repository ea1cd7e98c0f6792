package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de atributo dinámico.
const (
	AtributoTexto = "texto" // valor libre
	AtributoLista = "lista" // valor restringido a la lista de permitidos
)

// AtributoProducto es un par nombre/valor dinámico asociado a un producto.
// El tipo proviene de la definición en el rubro; en importaciones masivas
// toda columna no obligatoria entra como "texto".
type AtributoProducto struct {
	Nombre string `json:"nombre"`
	Tipo   string `json:"tipo"`
	Valor  string `json:"valor"`
}

// Product es un artículo del catálogo. Precios siempre en decimal con dos
// cifras; CantidadStock se mantiene como contador simple por sucursal.
type Product struct {
	ID                       string
	Nombre                   string
	Rubro                    string // rubro comercial (taxonomía raíz)
	Categoria                string // categoría dentro del rubro
	Atributos                []AtributoProducto
	PrecioCosto              decimal.Decimal
	PrecioPublico            decimal.Decimal
	CantidadStock            int
	SKU                      string // identificador único de 13 dígitos
	Fabricante               string
	SucursalID               string
	ImagenURL                string
	FechaVencimiento         time.Time
	FechaUltimaActualizacion time.Time
	Activo                   bool

	Sucursal *Sucursal // expandido en listados; nil si no se pidió
}
