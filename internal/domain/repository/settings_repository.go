package repository

import (
	"context"

	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
)

// SettingsRepository puerto de la configuración global mutable. Se consulta
// en el momento de uso; un fallo acá no debe impedir la operación que la lee.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.Settings, error)
}
