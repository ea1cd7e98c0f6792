package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/jpereyra/gestion-comercio-api/internal/application/dto"
	"github.com/jpereyra/gestion-comercio-api/internal/domain"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/repository"
)

// CajaUseCase operaciones del libro de caja: apertura y cierre de sesión,
// movimientos manuales, listados, resumen diario y reconstrucción de turno.
//
// El cierre calcula el saldo sobre la ventana de "hoy" sin importar cuándo fue
// la apertura pareada: una sesión que cruza la medianoche cierra con totales
// que no corresponden al tramo real. Se conserva el comportamiento histórico.
type CajaUseCase struct {
	movimientos repository.CashMovementRepository
	ventas      repository.SaleRepository
	now         func() time.Time
}

// NewCajaUseCase construye el caso de uso.
func NewCajaUseCase(movimientos repository.CashMovementRepository, ventas repository.SaleRepository) *CajaUseCase {
	return &CajaUseCase{
		movimientos: movimientos,
		ventas:      ventas,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj (para tests).
func (uc *CajaUseCase) WithClock(now func() time.Time) *CajaUseCase {
	uc.now = now
	return uc
}

// ventanaDelDia devuelve [00:00:00.000, 23:59:59.999] del día de ref en hora local.
func ventanaDelDia(ref time.Time) (time.Time, time.Time) {
	inicio := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	fin := time.Date(ref.Year(), ref.Month(), ref.Day(), 23, 59, 59, 999_000_000, ref.Location())
	return inicio, fin
}

// Abrir registra la apertura de caja de una sucursal. No impide abrir con una
// sesión ya abierta: dos aperturas concurrentes quedan ambas registradas.
func (uc *CajaUseCase) Abrir(ctx context.Context, in dto.AperturaCajaRequest) (*dto.MovimientoResponse, error) {
	if in.Sucursal == "" || in.Responsable == "" || in.Monto == nil {
		return nil, fmt.Errorf("faltan datos para apertura de caja: %w", domain.ErrInvalidInput)
	}

	apertura := &entity.CashMovement{
		ID:            uuid.New().String(),
		SucursalID:    in.Sucursal,
		ResponsableID: in.Responsable,
		Tipo:          entity.TipoApertura,
		Concepto:      "Apertura de caja",
		Monto:         *in.Monto,
		MetodoPago:    entity.MetodoEfectivo,
		Comentario:    in.Comentario,
		Fecha:         uc.now(),
		Activo:        true,
	}
	if err := uc.movimientos.Create(ctx, apertura); err != nil {
		return nil, err
	}
	out := toMovimientoResponse(apertura)
	return &out, nil
}

// Cerrar registra el cierre de caja. Suma las ventas del día y los ingresos y
// egresos manuales de la sucursal, y deriva saldo = ventas + ingresos - egresos.
// Si el llamador envía un monto explícito se registra ese valor; si no, el saldo.
// Las dos lecturas (ventas y movimientos) se lanzan en paralelo; no hay
// aislamiento frente a escrituras concurrentes, el saldo es una foto best-effort.
func (uc *CajaUseCase) Cerrar(ctx context.Context, in dto.CierreCajaRequest) (*dto.MovimientoResponse, error) {
	if in.Sucursal == "" || in.Responsable == "" {
		return nil, fmt.Errorf("faltan datos para cierre de caja: %w", domain.ErrInvalidInput)
	}

	inicio, fin := ventanaDelDia(uc.now())

	var totalVentas, totalIngresos, totalEgresos decimal.Decimal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalVentas, err = uc.ventas.SumTotal(gctx, in.Sucursal, inicio, fin)
		return err
	})
	g.Go(func() error {
		var err error
		totalIngresos, totalEgresos, err = uc.movimientos.SumIngresosEgresos(gctx, in.Sucursal, inicio, fin)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	saldoFinal := totalVentas.Add(totalIngresos).Sub(totalEgresos)

	monto := saldoFinal
	if in.Monto != nil {
		monto = *in.Monto
	}
	comentario := in.Comentario
	if comentario == "" {
		comentario = fmt.Sprintf("Ventas: $%s + Ingresos: $%s − Egresos: $%s = Saldo: $%s",
			totalVentas.StringFixed(2), totalIngresos.StringFixed(2),
			totalEgresos.StringFixed(2), saldoFinal.StringFixed(2))
	}

	cierre := &entity.CashMovement{
		ID:            uuid.New().String(),
		SucursalID:    in.Sucursal,
		ResponsableID: in.Responsable,
		Tipo:          entity.TipoCierre,
		Concepto:      "Cierre de caja",
		Monto:         monto,
		MetodoPago:    entity.MetodoEfectivo,
		Comentario:    comentario,
		Fecha:         uc.now(),
		Activo:        true,
	}
	if err := uc.movimientos.Create(ctx, cierre); err != nil {
		return nil, err
	}
	out := toMovimientoResponse(cierre)
	return &out, nil
}

// Registrar crea un ingreso o egreso manual (o un movimiento vinculado a venta).
// Monto es puntero: cero es un monto válido siempre que el campo venga presente.
func (uc *CajaUseCase) Registrar(ctx context.Context, in dto.MovimientoManualRequest) (*dto.MovimientoResponse, error) {
	if in.Tipo == "" || in.Concepto == "" || in.Monto == nil || in.Sucursal == "" || in.Responsable == "" {
		return nil, fmt.Errorf("faltan campos obligatorios: %w", domain.ErrInvalidInput)
	}
	if !entity.TipoValido(in.Tipo) {
		return nil, fmt.Errorf("tipo de movimiento desconocido %q: %w", in.Tipo, domain.ErrInvalidInput)
	}
	metodo := in.MetodoPago
	if metodo == "" {
		metodo = entity.MetodoEfectivo
	}
	if !entity.MetodoPagoValido(metodo) {
		return nil, fmt.Errorf("método de pago desconocido %q: %w", metodo, domain.ErrInvalidInput)
	}

	mov := &entity.CashMovement{
		ID:            uuid.New().String(),
		SucursalID:    in.Sucursal,
		ResponsableID: in.Responsable,
		Tipo:          in.Tipo,
		Concepto:      in.Concepto,
		Monto:         *in.Monto,
		MetodoPago:    metodo,
		Comentario:    in.Comentario,
		Fecha:         uc.now(),
		Activo:        true,
	}
	if err := uc.movimientos.Create(ctx, mov); err != nil {
		return nil, err
	}
	out := toMovimientoResponse(mov)
	return &out, nil
}

// Listar devuelve los movimientos activos, opcionalmente filtrados por
// sucursal y por rango de fechas (solo si vienen las dos puntas), ordenados
// por fecha ascendente y con sucursal/responsable expandidos.
func (uc *CajaUseCase) Listar(ctx context.Context, q dto.MovimientosQuery) ([]dto.MovimientoResponse, error) {
	filtro := repository.MovimientosFilter{
		SucursalID:  q.Sucursal,
		SoloActivos: true,
	}
	if q.FechaInicio != "" && q.FechaFin != "" {
		desde, err := parseFecha(q.FechaInicio)
		if err != nil {
			return nil, fmt.Errorf("fechaInicio inválida: %w", domain.ErrInvalidInput)
		}
		hasta, err := parseFecha(q.FechaFin)
		if err != nil {
			return nil, fmt.Errorf("fechaFin inválida: %w", domain.ErrInvalidInput)
		}
		filtro.Desde = &desde
		filtro.Hasta = &hasta
	}

	movimientos, err := uc.movimientos.List(ctx, filtro)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoResponse, 0, len(movimientos))
	for _, m := range movimientos {
		out = append(out, toMovimientoResponse(m))
	}
	return out, nil
}

// ResumenDiario suma en forma independiente ventas, ingresos y egresos del día
// para la sucursal y deriva netoCaja = ventas + ingresos - egresos.
func (uc *CajaUseCase) ResumenDiario(ctx context.Context, sucursalID string) (*dto.ResumenDiarioResponse, error) {
	if sucursalID == "" {
		return nil, fmt.Errorf("sucursal requerida: %w", domain.ErrInvalidInput)
	}

	inicio, fin := ventanaDelDia(uc.now())

	var totalVentas, ingresos, egresos decimal.Decimal
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalVentas, err = uc.ventas.SumTotal(gctx, sucursalID, inicio, fin)
		return err
	})
	g.Go(func() error {
		var err error
		ingresos, egresos, err = uc.movimientos.SumIngresosEgresos(gctx, sucursalID, inicio, fin)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.ResumenDiarioResponse{
		TotalVentas: totalVentas.Round(2),
		Ingresos:    ingresos,
		Egresos:     egresos,
		NetoCaja:    totalVentas.Add(ingresos).Sub(egresos).Round(2),
	}, nil
}

// Turno reconstruye el turno de la sucursal: la apertura más reciente, el
// primer cierre posterior a ella (nil si la caja sigue abierta, en cuyo caso
// el límite es "ahora") y todos los movimientos entre ambos, inclusive.
//
// Empareja a lo sumo una apertura con el cierre cronológicamente siguiente.
// Como manda la apertura más reciente, una apertura anterior sin cierre propio
// queda fuera de la ventana junto con sus movimientos, sin señalarse como error.
func (uc *CajaUseCase) Turno(ctx context.Context, sucursalID string) (*dto.TurnoResponse, error) {
	if sucursalID == "" {
		return nil, fmt.Errorf("sucursal requerida: %w", domain.ErrInvalidInput)
	}

	apertura, err := uc.movimientos.UltimoPorTipo(ctx, sucursalID, entity.TipoApertura)
	if err != nil {
		return nil, err
	}
	if apertura == nil {
		return nil, fmt.Errorf("no se encontró apertura de caja: %w", domain.ErrNotFound)
	}

	cierre, err := uc.movimientos.PrimerCierreDespuesDe(ctx, sucursalID, apertura.Fecha)
	if err != nil {
		return nil, err
	}

	fin := uc.now()
	if cierre != nil {
		fin = cierre.Fecha
	}

	movimientos, err := uc.movimientos.ListBetween(ctx, sucursalID, apertura.Fecha, fin)
	if err != nil {
		return nil, err
	}

	resp := &dto.TurnoResponse{
		Movimientos: make([]dto.MovimientoResponse, 0, len(movimientos)),
	}
	ap := toMovimientoResponse(apertura)
	resp.Apertura = &ap
	if cierre != nil {
		ci := toMovimientoResponse(cierre)
		resp.Cierre = &ci
	}
	for _, m := range movimientos {
		resp.Movimientos = append(resp.Movimientos, toMovimientoResponse(m))
	}
	return resp, nil
}

// Actualizar aplica un merge parcial sobre el movimiento: solo los campos
// presentes en la petición pisan los existentes.
func (uc *CajaUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarMovimientoRequest) (*dto.MovimientoResponse, error) {
	mov, err := uc.movimientos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, fmt.Errorf("movimiento no encontrado: %w", domain.ErrNotFound)
	}

	if in.Tipo != nil {
		if !entity.TipoValido(*in.Tipo) {
			return nil, fmt.Errorf("tipo de movimiento desconocido %q: %w", *in.Tipo, domain.ErrInvalidInput)
		}
		mov.Tipo = *in.Tipo
	}
	if in.Concepto != nil {
		mov.Concepto = *in.Concepto
	}
	if in.Monto != nil {
		mov.Monto = *in.Monto
	}
	if in.Sucursal != nil {
		mov.SucursalID = *in.Sucursal
	}
	if in.Responsable != nil {
		mov.ResponsableID = *in.Responsable
	}
	if in.MetodoPago != nil {
		if !entity.MetodoPagoValido(*in.MetodoPago) {
			return nil, fmt.Errorf("método de pago desconocido %q: %w", *in.MetodoPago, domain.ErrInvalidInput)
		}
		mov.MetodoPago = *in.MetodoPago
	}
	if in.Comentario != nil {
		mov.Comentario = *in.Comentario
	}

	if err := uc.movimientos.Update(ctx, mov); err != nil {
		return nil, err
	}
	out := toMovimientoResponse(mov)
	return &out, nil
}

// Eliminar borra el movimiento en forma definitiva. La marca activo no
// interviene: el borrado es duro.
func (uc *CajaUseCase) Eliminar(ctx context.Context, id string) error {
	mov, err := uc.movimientos.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if mov == nil {
		return fmt.Errorf("movimiento no encontrado: %w", domain.ErrNotFound)
	}
	return uc.movimientos.Delete(ctx, id)
}

// UltimoCierre devuelve el monto del cierre más reciente de la sucursal.
func (uc *CajaUseCase) UltimoCierre(ctx context.Context, sucursalID string) (*dto.UltimoCierreResponse, error) {
	if sucursalID == "" {
		return nil, fmt.Errorf("sucursal requerida: %w", domain.ErrInvalidInput)
	}
	cierre, err := uc.movimientos.UltimoPorTipo(ctx, sucursalID, entity.TipoCierre)
	if err != nil {
		return nil, err
	}
	if cierre == nil {
		return nil, fmt.Errorf("no hay cierres previos: %w", domain.ErrNotFound)
	}
	return &dto.UltimoCierreResponse{Monto: cierre.Monto}, nil
}

func toMovimientoResponse(m *entity.CashMovement) dto.MovimientoResponse {
	resp := dto.MovimientoResponse{
		ID:          m.ID,
		Tipo:        m.Tipo,
		Concepto:    m.Concepto,
		Monto:       m.Monto,
		MetodoPago:  m.MetodoPago,
		Sucursal:    m.SucursalID,
		Responsable: m.ResponsableID,
		VentaID:     m.VentaID,
		Comentario:  m.Comentario,
		Fecha:       m.Fecha,
		Activo:      m.Activo,
	}
	if m.Sucursal != nil {
		resp.SucursalRef = &dto.SucursalRef{ID: m.Sucursal.ID, Nombre: m.Sucursal.Nombre}
	}
	if m.Responsable != nil {
		resp.ResponsableRef = &dto.UsuarioRef{ID: m.Responsable.ID, Nombre: m.Responsable.Nombre}
	}
	return resp
}
