package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AperturaCajaRequest entrada para abrir caja. Monto es puntero para
// distinguir "no enviado" de cero: un monto de apertura en cero es válido.
type AperturaCajaRequest struct {
	Sucursal    string           `json:"sucursal"`
	Responsable string           `json:"responsable"`
	Monto       *decimal.Decimal `json:"monto"`
	Comentario  string           `json:"comentario"`
}

// CierreCajaRequest entrada para cerrar caja. Si Monto viene, se registra ese
// valor; si no, se registra el saldo derivado de ventas + ingresos - egresos.
type CierreCajaRequest struct {
	Sucursal    string           `json:"sucursal"`
	Responsable string           `json:"responsable"`
	Monto       *decimal.Decimal `json:"monto"`
	Comentario  string           `json:"comentario"`
}

// MovimientoManualRequest entrada para registrar un ingreso/egreso manual.
type MovimientoManualRequest struct {
	Tipo        string           `json:"tipo"`
	Concepto    string           `json:"concepto"`
	Monto       *decimal.Decimal `json:"monto"`
	Sucursal    string           `json:"sucursal"`
	Responsable string           `json:"responsable"`
	MetodoPago  string           `json:"metodo_pago"`
	Comentario  string           `json:"comentario"`
}

// ActualizarMovimientoRequest entrada para editar un movimiento. Solo los
// campos presentes se aplican (merge parcial).
type ActualizarMovimientoRequest struct {
	Tipo        *string          `json:"tipo"`
	Concepto    *string          `json:"concepto"`
	Monto       *decimal.Decimal `json:"monto"`
	Sucursal    *string          `json:"sucursal"`
	Responsable *string          `json:"responsable"`
	MetodoPago  *string          `json:"metodo_pago"`
	Comentario  *string          `json:"comentario"`
}

// MovimientosQuery filtros del listado de movimientos. El rango de fechas
// aplica solo si vienen las dos puntas.
type MovimientosQuery struct {
	Sucursal    string `query:"sucursal"`
	FechaInicio string `query:"fechaInicio"`
	FechaFin    string `query:"fechaFin"`
}

// MovimientoResponse salida de un movimiento de caja.
type MovimientoResponse struct {
	ID          string           `json:"id"`
	Tipo        string           `json:"tipo"`
	Concepto    string           `json:"concepto"`
	Monto       decimal.Decimal  `json:"monto"`
	MetodoPago  string           `json:"metodo_pago"`
	Sucursal    string           `json:"sucursal"`
	Responsable string           `json:"responsable"`
	VentaID     string           `json:"vinculada_a_venta,omitempty"`
	Comentario  string           `json:"comentario"`
	Fecha       time.Time        `json:"fecha_movimiento"`
	Activo      bool             `json:"activo"`

	// Referencias expandidas (solo en listados).
	SucursalRef    *SucursalRef `json:"sucursal_ref,omitempty"`
	ResponsableRef *UsuarioRef  `json:"responsable_ref,omitempty"`
}

// MovimientoCreadoResponse confirmación con el movimiento creado o actualizado.
type MovimientoCreadoResponse struct {
	Message    string             `json:"message"`
	Movimiento MovimientoResponse `json:"movimiento"`
}

// ResumenDiarioResponse resumen de caja del día para una sucursal.
type ResumenDiarioResponse struct {
	TotalVentas decimal.Decimal `json:"totalVentas"`
	Ingresos    decimal.Decimal `json:"ingresos"`
	Egresos     decimal.Decimal `json:"egresos"`
	NetoCaja    decimal.Decimal `json:"netoCaja"`
}

// TurnoResponse reconstrucción del turno vigente o más reciente: la última
// apertura, su cierre pareado (nil si la caja sigue abierta) y los movimientos
// entre ambos.
type TurnoResponse struct {
	Apertura    *MovimientoResponse  `json:"apertura"`
	Cierre      *MovimientoResponse  `json:"cierre"`
	Movimientos []MovimientoResponse `json:"movimientos"`
}

// UltimoCierreResponse monto del cierre más reciente de la sucursal.
type UltimoCierreResponse struct {
	Monto decimal.Decimal `json:"monto"`
}
