package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de caja.
const (
	TipoApertura = "apertura"
	TipoCierre   = "cierre"
	TipoIngreso  = "ingreso"
	TipoEgreso   = "egreso"
	TipoVenta    = "venta" // generado al confirmar una venta
)

// Métodos de pago.
const (
	MetodoEfectivo      = "efectivo"
	MetodoTarjeta       = "tarjeta"
	MetodoTransferencia = "transferencia"
)

// TipoValido indica si el tipo de movimiento es uno de los conocidos.
func TipoValido(tipo string) bool {
	switch tipo {
	case TipoApertura, TipoCierre, TipoIngreso, TipoEgreso, TipoVenta:
		return true
	}
	return false
}

// MetodoPagoValido indica si el método de pago es uno de los conocidos.
func MetodoPagoValido(metodo string) bool {
	switch metodo {
	case MetodoEfectivo, MetodoTarjeta, MetodoTransferencia:
		return true
	}
	return false
}

// CashMovement es un asiento del libro de caja: apertura, cierre, ingreso o
// egreso manual, o el reflejo de una venta confirmada.
// Monto siempre en decimal; el signo por convención del llamador (ingresos y
// egresos se suman por separado, no por signo).
type CashMovement struct {
	ID            string
	SucursalID    string
	ResponsableID string // quien registró el movimiento
	Tipo          string
	Concepto      string // ej: "Apertura de caja", "Retiro de efectivo"
	Monto         decimal.Decimal
	MetodoPago    string
	VentaID       string // opcional, vínculo a la venta que lo originó
	Comentario    string
	Fecha         time.Time // fecha del movimiento
	Activo        bool

	// Referencias expandidas en listados (equivalente a populate); nil si no se pidió expansión.
	Sucursal    *Sucursal
	Responsable *Usuario
}
