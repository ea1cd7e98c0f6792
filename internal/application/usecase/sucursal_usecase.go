package usecase

import (
	"context"

	"github.com/jpereyra/gestion-comercio-api/internal/application/dto"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/repository"
)

// SucursalUseCase lectura de sucursales para los selectores del cliente.
type SucursalUseCase struct {
	sucursales repository.SucursalRepository
}

// NewSucursalUseCase construye el caso de uso.
func NewSucursalUseCase(sucursales repository.SucursalRepository) *SucursalUseCase {
	return &SucursalUseCase{sucursales: sucursales}
}

// Listar devuelve todas las sucursales.
func (uc *SucursalUseCase) Listar(ctx context.Context) ([]dto.SucursalRef, error) {
	sucursales, err := uc.sucursales.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SucursalRef, 0, len(sucursales))
	for _, s := range sucursales {
		out = append(out, dto.SucursalRef{ID: s.ID, Nombre: s.Nombre})
	}
	return out, nil
}
