package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// SaleRepository puerto de solo lectura sobre las ventas finalizadas.
// Este servicio nunca crea ni modifica ventas.
type SaleRepository interface {
	// SumTotal suma los totales de venta de la sucursal dentro de la ventana
	// [desde, hasta] inclusive. Devuelve cero si no hay ventas.
	SumTotal(ctx context.Context, sucursalID string, desde, hasta time.Time) (decimal.Decimal, error)
}
