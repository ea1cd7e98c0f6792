package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/repository"
)

var _ repository.CashMovementRepository = (*CashMovementRepo)(nil)

// CashMovementRepo adaptador de persistencia del libro de caja sobre PostgreSQL.
type CashMovementRepo struct {
	pool *pgxpool.Pool
}

// NewCashMovementRepository construye el adaptador.
func NewCashMovementRepository(pool *pgxpool.Pool) *CashMovementRepo {
	return &CashMovementRepo{pool: pool}
}

// Columnas del movimiento con las referencias expandidas por JOIN.
const movimientoExpandidoCols = `
	m.id, m.sucursal_id, m.responsable_id, m.tipo, m.concepto, m.monto,
	m.metodo_pago, COALESCE(m.venta_id, ''), m.comentario, m.fecha, m.activo,
	s.id, s.nombre, u.id, u.nombre`

func scanMovimientoExpandido(row pgx.Row) (*entity.CashMovement, error) {
	var m entity.CashMovement
	var suc entity.Sucursal
	var usr entity.Usuario
	err := row.Scan(
		&m.ID, &m.SucursalID, &m.ResponsableID, &m.Tipo, &m.Concepto, &m.Monto,
		&m.MetodoPago, &m.VentaID, &m.Comentario, &m.Fecha, &m.Activo,
		&suc.ID, &suc.Nombre, &usr.ID, &usr.Nombre,
	)
	if err != nil {
		return nil, err
	}
	m.Sucursal = &suc
	m.Responsable = &usr
	return &m, nil
}

// Create inserta un movimiento de caja.
func (r *CashMovementRepo) Create(ctx context.Context, m *entity.CashMovement) error {
	query := `
		INSERT INTO cash_movements (id, sucursal_id, responsable_id, tipo, concepto, monto, metodo_pago, venta_id, comentario, fecha, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, $11)`
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.SucursalID, m.ResponsableID, m.Tipo, m.Concepto, m.Monto,
		m.MetodoPago, m.VentaID, m.Comentario, m.Fecha, m.Activo,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID, sin expansión.
func (r *CashMovementRepo) GetByID(ctx context.Context, id string) (*entity.CashMovement, error) {
	query := `
		SELECT id, sucursal_id, responsable_id, tipo, concepto, monto, metodo_pago, COALESCE(venta_id, ''), comentario, fecha, activo
		FROM cash_movements WHERE id = $1`
	var m entity.CashMovement
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.SucursalID, &m.ResponsableID, &m.Tipo, &m.Concepto, &m.Monto,
		&m.MetodoPago, &m.VentaID, &m.Comentario, &m.Fecha, &m.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// List devuelve movimientos filtrados, ordenados por fecha ascendente, con
// sucursal y responsable expandidos.
func (r *CashMovementRepo) List(ctx context.Context, f repository.MovimientosFilter) ([]*entity.CashMovement, error) {
	var b strings.Builder
	b.WriteString(`
		SELECT ` + movimientoExpandidoCols + `
		FROM cash_movements m
		JOIN sucursales s ON s.id = m.sucursal_id
		JOIN usuarios u ON u.id = m.responsable_id
		WHERE 1=1`)

	var args []any
	if f.SoloActivos {
		b.WriteString(" AND m.activo")
	}
	if f.SucursalID != "" {
		args = append(args, f.SucursalID)
		fmt.Fprintf(&b, " AND m.sucursal_id = $%d", len(args))
	}
	if f.Desde != nil && f.Hasta != nil {
		args = append(args, *f.Desde, *f.Hasta)
		fmt.Fprintf(&b, " AND m.fecha BETWEEN $%d AND $%d", len(args)-1, len(args))
	}
	b.WriteString(" ORDER BY m.fecha ASC")

	rows, err := r.pool.Query(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()

	var list []*entity.CashMovement
	for rows.Next() {
		m, err := scanMovimientoExpandido(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// SumIngresosEgresos suma por separado los ingresos y egresos de la sucursal
// en la ventana [desde, hasta].
func (r *CashMovementRepo) SumIngresosEgresos(ctx context.Context, sucursalID string, desde, hasta time.Time) (decimal.Decimal, decimal.Decimal, error) {
	query := `
		SELECT
			COALESCE(SUM(monto) FILTER (WHERE tipo = 'ingreso'), 0),
			COALESCE(SUM(monto) FILTER (WHERE tipo = 'egreso'), 0)
		FROM cash_movements
		WHERE sucursal_id = $1 AND fecha BETWEEN $2 AND $3`
	var ingresos, egresos decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, sucursalID, desde, hasta).Scan(&ingresos, &egresos); err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("sum ingresos/egresos: %w", err)
	}
	return ingresos, egresos, nil
}

// UltimoPorTipo devuelve el movimiento más reciente del tipo dado.
func (r *CashMovementRepo) UltimoPorTipo(ctx context.Context, sucursalID, tipo string) (*entity.CashMovement, error) {
	query := `
		SELECT id, sucursal_id, responsable_id, tipo, concepto, monto, metodo_pago, COALESCE(venta_id, ''), comentario, fecha, activo
		FROM cash_movements
		WHERE sucursal_id = $1 AND tipo = $2
		ORDER BY fecha DESC
		LIMIT 1`
	var m entity.CashMovement
	err := r.pool.QueryRow(ctx, query, sucursalID, tipo).Scan(
		&m.ID, &m.SucursalID, &m.ResponsableID, &m.Tipo, &m.Concepto, &m.Monto,
		&m.MetodoPago, &m.VentaID, &m.Comentario, &m.Fecha, &m.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("último %s: %w", tipo, err)
	}
	return &m, nil
}

// PrimerCierreDespuesDe devuelve el primer cierre con fecha estrictamente
// posterior a la indicada.
func (r *CashMovementRepo) PrimerCierreDespuesDe(ctx context.Context, sucursalID string, fecha time.Time) (*entity.CashMovement, error) {
	query := `
		SELECT id, sucursal_id, responsable_id, tipo, concepto, monto, metodo_pago, COALESCE(venta_id, ''), comentario, fecha, activo
		FROM cash_movements
		WHERE sucursal_id = $1 AND tipo = 'cierre' AND fecha > $2
		ORDER BY fecha ASC
		LIMIT 1`
	var m entity.CashMovement
	err := r.pool.QueryRow(ctx, query, sucursalID, fecha).Scan(
		&m.ID, &m.SucursalID, &m.ResponsableID, &m.Tipo, &m.Concepto, &m.Monto,
		&m.MetodoPago, &m.VentaID, &m.Comentario, &m.Fecha, &m.Activo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("primer cierre: %w", err)
	}
	return &m, nil
}

// ListBetween devuelve todos los movimientos de la sucursal en [desde, hasta]
// inclusive, ascendente, con referencias expandidas.
func (r *CashMovementRepo) ListBetween(ctx context.Context, sucursalID string, desde, hasta time.Time) ([]*entity.CashMovement, error) {
	query := `
		SELECT ` + movimientoExpandidoCols + `
		FROM cash_movements m
		JOIN sucursales s ON s.id = m.sucursal_id
		JOIN usuarios u ON u.id = m.responsable_id
		WHERE m.sucursal_id = $1 AND m.fecha BETWEEN $2 AND $3
		ORDER BY m.fecha ASC`
	rows, err := r.pool.Query(ctx, query, sucursalID, desde, hasta)
	if err != nil {
		return nil, fmt.Errorf("movimientos del turno: %w", err)
	}
	defer rows.Close()

	var list []*entity.CashMovement
	for rows.Next() {
		m, err := scanMovimientoExpandido(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// Update guarda los campos editables del movimiento.
func (r *CashMovementRepo) Update(ctx context.Context, m *entity.CashMovement) error {
	query := `
		UPDATE cash_movements
		SET tipo = $2, concepto = $3, monto = $4, sucursal_id = $5, responsable_id = $6, metodo_pago = $7, comentario = $8
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		m.ID, m.Tipo, m.Concepto, m.Monto, m.SucursalID, m.ResponsableID, m.MetodoPago, m.Comentario,
	)
	if err != nil {
		return fmt.Errorf("update movimiento: %w", err)
	}
	return nil
}

// Delete elimina el movimiento en forma definitiva.
func (r *CashMovementRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM cash_movements WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete movimiento: %w", err)
	}
	return nil
}
