package repository

import (
	"context"

	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
)

// SucursalRepository puerto de lectura de sucursales. Su administración vive
// en otro servicio; acá solo se valida existencia y se resuelve por nombre.
type SucursalRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Sucursal, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Sucursal, error)
	List(ctx context.Context) ([]*entity.Sucursal, error)
}
