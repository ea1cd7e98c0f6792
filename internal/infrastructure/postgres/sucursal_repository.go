package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/repository"
)

var _ repository.SucursalRepository = (*SucursalRepo)(nil)

// SucursalRepo lectura de sucursales.
type SucursalRepo struct {
	pool *pgxpool.Pool
}

// NewSucursalRepository construye el adaptador.
func NewSucursalRepository(pool *pgxpool.Pool) *SucursalRepo {
	return &SucursalRepo{pool: pool}
}

// GetByID obtiene una sucursal por ID.
func (r *SucursalRepo) GetByID(ctx context.Context, id string) (*entity.Sucursal, error) {
	var s entity.Sucursal
	err := r.pool.QueryRow(ctx,
		`SELECT id, nombre, direccion, created_at FROM sucursales WHERE id = $1`, id).
		Scan(&s.ID, &s.Nombre, &s.Direccion, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sucursal: %w", err)
	}
	return &s, nil
}

// GetByNombre obtiene una sucursal por nombre exacto (usado por la carga masiva).
func (r *SucursalRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Sucursal, error) {
	var s entity.Sucursal
	err := r.pool.QueryRow(ctx,
		`SELECT id, nombre, direccion, created_at FROM sucursales WHERE nombre = $1`, nombre).
		Scan(&s.ID, &s.Nombre, &s.Direccion, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sucursal por nombre: %w", err)
	}
	return &s, nil
}

// List devuelve todas las sucursales.
func (r *SucursalRepo) List(ctx context.Context) ([]*entity.Sucursal, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, nombre, direccion, created_at FROM sucursales ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("list sucursales: %w", err)
	}
	defer rows.Close()

	var list []*entity.Sucursal
	for rows.Next() {
		var s entity.Sucursal
		if err := rows.Scan(&s.ID, &s.Nombre, &s.Direccion, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sucursal: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
