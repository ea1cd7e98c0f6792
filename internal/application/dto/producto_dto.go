package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
)

// CrearProductoRequest entrada para crear un producto. Los precios aceptan
// formato regional ("1.234,56") y se normalizan antes de guardar.
type CrearProductoRequest struct {
	Nombre           string                    `json:"nombre"`
	Rubro            string                    `json:"rubro"`
	Categoria        string                    `json:"categoria"`
	Atributos        []entity.AtributoProducto `json:"atributos"`
	PrecioCosto      string                    `json:"precio_costo"`
	PrecioPublico    string                    `json:"precio_publico"`
	CantidadStock    int                       `json:"cantidad_stock"`
	SKU              string                    `json:"sku"`
	Fabricante       string                    `json:"fabricante"`
	Sucursal         string                    `json:"sucursal"`
	ImagenURL        string                    `json:"imagen_url"`
	FechaVencimiento string                    `json:"fecha_vencimiento"`
}

// ActualizarProductoRequest entrada para editar un producto (merge parcial).
type ActualizarProductoRequest struct {
	Nombre           *string                   `json:"nombre"`
	Rubro            *string                   `json:"rubro"`
	Categoria        *string                   `json:"categoria"`
	Atributos        []entity.AtributoProducto `json:"atributos"`
	PrecioCosto      *string                   `json:"precio_costo"`
	PrecioPublico    *string                   `json:"precio_publico"`
	CantidadStock    *int                      `json:"cantidad_stock"`
	Fabricante       *string                   `json:"fabricante"`
	Sucursal         *string                   `json:"sucursal"`
	ImagenURL        *string                   `json:"imagen_url"`
	FechaVencimiento *string                   `json:"fecha_vencimiento"`
}

// CambiarEstadoRequest entrada para activar/desactivar un producto.
type CambiarEstadoRequest struct {
	Activo bool `json:"activo"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID                       string                    `json:"id"`
	Nombre                   string                    `json:"nombre"`
	Rubro                    string                    `json:"rubro"`
	Categoria                string                    `json:"categoria"`
	Atributos                []entity.AtributoProducto `json:"atributos"`
	PrecioCosto              decimal.Decimal           `json:"precio_costo"`
	PrecioPublico            decimal.Decimal           `json:"precio_publico"`
	CantidadStock            int                       `json:"cantidad_stock"`
	SKU                      string                    `json:"sku"`
	Fabricante               string                    `json:"fabricante"`
	Sucursal                 string                    `json:"sucursal"`
	ImagenURL                string                    `json:"imagen_url"`
	FechaVencimiento         time.Time                 `json:"fecha_vencimiento"`
	FechaUltimaActualizacion time.Time                 `json:"fecha_ultima_actualizacion"`
	Activo                   bool                      `json:"activo"`

	SucursalRef *SucursalRef `json:"sucursal_ref,omitempty"`
}

// ImportacionResponse resultado de una carga masiva.
type ImportacionResponse struct {
	Message   string             `json:"message"`
	Productos []ProductoResponse `json:"productos"`
}
