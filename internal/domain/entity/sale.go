package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es una venta finalizada. Este servicio solo la lee para agregar
// totales por sucursal y ventana de tiempo; nunca la crea ni la modifica.
type Sale struct {
	ID         string
	SucursalID string
	Total      decimal.Decimal
	FechaVenta time.Time
}
