package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
)

// MovimientosFilter filtro para listados de movimientos de caja.
// Desde/Hasta aplican solo si ambos están presentes (rango inclusivo).
type MovimientosFilter struct {
	SucursalID  string
	Desde       *time.Time
	Hasta       *time.Time
	SoloActivos bool
}

// CashMovementRepository puerto de persistencia del libro de caja.
// Los métodos de lectura devuelven (nil, nil) cuando no hay registro.
type CashMovementRepository interface {
	Create(ctx context.Context, m *entity.CashMovement) error
	GetByID(ctx context.Context, id string) (*entity.CashMovement, error)

	// List devuelve movimientos ordenados por fecha ascendente, con sucursal
	// y responsable expandidos.
	List(ctx context.Context, f MovimientosFilter) ([]*entity.CashMovement, error)

	// SumIngresosEgresos suma por separado los movimientos tipo ingreso y
	// egreso de la sucursal dentro de la ventana [desde, hasta].
	SumIngresosEgresos(ctx context.Context, sucursalID string, desde, hasta time.Time) (ingresos, egresos decimal.Decimal, err error)

	// UltimoPorTipo devuelve el movimiento más reciente del tipo dado para la
	// sucursal (fecha descendente).
	UltimoPorTipo(ctx context.Context, sucursalID, tipo string) (*entity.CashMovement, error)

	// PrimerCierreDespuesDe devuelve el primer cierre de la sucursal con fecha
	// estrictamente posterior a la indicada.
	PrimerCierreDespuesDe(ctx context.Context, sucursalID string, fecha time.Time) (*entity.CashMovement, error)

	// ListBetween devuelve todos los movimientos de la sucursal con fecha en
	// [desde, hasta] inclusive, ascendente, con referencias expandidas.
	ListBetween(ctx context.Context, sucursalID string, desde, hasta time.Time) ([]*entity.CashMovement, error)

	Update(ctx context.Context, m *entity.CashMovement) error

	// Delete elimina el registro en forma definitiva.
	Delete(ctx context.Context, id string) error
}
