package repository

import (
	"context"

	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
)

// RubricRepository puerto de persistencia de la taxonomía de rubros.
// Las lecturas devuelven (nil, nil) cuando no hay registro.
type RubricRepository interface {
	Create(ctx context.Context, r *entity.Rubric) error
	GetByID(ctx context.Context, id string) (*entity.Rubric, error)
	GetByNombre(ctx context.Context, nombre string) (*entity.Rubric, error)
	List(ctx context.Context) ([]*entity.Rubric, error)

	// Update reemplaza el documento completo (nombre y categorías).
	Update(ctx context.Context, r *entity.Rubric) error

	Delete(ctx context.Context, id string) error
}
