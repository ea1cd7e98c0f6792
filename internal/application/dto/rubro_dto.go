package dto

import (
	"time"

	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
)

// CrearRubroRequest entrada para crear un rubro con sus categorías.
type CrearRubroRequest struct {
	Nombre     string             `json:"nombre"`
	Categorias []entity.Categoria `json:"categorias"`
}

// ActualizarRubroRequest reemplazo completo del rubro (nombre y categorías).
type ActualizarRubroRequest struct {
	Nombre     string             `json:"nombre"`
	Categorias []entity.Categoria `json:"categorias"`
}

// RubroResponse salida de un rubro.
type RubroResponse struct {
	ID         string             `json:"id"`
	Nombre     string             `json:"nombre"`
	Categorias []entity.Categoria `json:"categorias"`
	CreatedAt  time.Time          `json:"created_at"`
}
