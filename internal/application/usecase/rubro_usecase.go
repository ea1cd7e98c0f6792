package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jpereyra/gestion-comercio-api/internal/application/dto"
	"github.com/jpereyra/gestion-comercio-api/internal/domain"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/repository"
)

// RubroUseCase administra la taxonomía de rubros. Las categorías y atributos
// viven dentro del documento del rubro; ningún otro módulo valida contra
// ellos (el catálogo los trata como texto opaco).
type RubroUseCase struct {
	rubros repository.RubricRepository
	now    func() time.Time
}

// NewRubroUseCase construye el caso de uso.
func NewRubroUseCase(rubros repository.RubricRepository) *RubroUseCase {
	return &RubroUseCase{rubros: rubros, now: time.Now}
}

// validarCategorias verifica que cada atributo tenga nombre y un tipo conocido.
func validarCategorias(categorias []entity.Categoria) error {
	for _, cat := range categorias {
		if cat.Nombre == "" {
			return fmt.Errorf("categoría sin nombre: %w", domain.ErrInvalidInput)
		}
		for _, attr := range cat.Atributos {
			if attr.Nombre == "" {
				return fmt.Errorf("atributo sin nombre en categoría %q: %w", cat.Nombre, domain.ErrInvalidInput)
			}
			if attr.Tipo != entity.AtributoLista && attr.Tipo != entity.AtributoTexto {
				return fmt.Errorf("tipo de atributo desconocido %q: %w", attr.Tipo, domain.ErrInvalidInput)
			}
		}
	}
	return nil
}

// Crear crea un rubro. El nombre es único en todo el sistema.
func (uc *RubroUseCase) Crear(ctx context.Context, in dto.CrearRubroRequest) (*dto.RubroResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("el nombre del rubro es requerido: %w", domain.ErrInvalidInput)
	}
	if err := validarCategorias(in.Categorias); err != nil {
		return nil, err
	}

	existente, err := uc.rubros.GetByNombre(ctx, in.Nombre)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, fmt.Errorf("el rubro ya existe: %w", domain.ErrDuplicate)
	}

	rubro := &entity.Rubric{
		ID:         uuid.New().String(),
		Nombre:     in.Nombre,
		Categorias: in.Categorias,
		CreatedAt:  uc.now(),
	}
	if err := uc.rubros.Create(ctx, rubro); err != nil {
		return nil, err
	}
	out := toRubroResponse(rubro)
	return &out, nil
}

// Listar devuelve todos los rubros.
func (uc *RubroUseCase) Listar(ctx context.Context) ([]dto.RubroResponse, error) {
	rubros, err := uc.rubros.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RubroResponse, 0, len(rubros))
	for _, r := range rubros {
		out = append(out, toRubroResponse(r))
	}
	return out, nil
}

// Actualizar reemplaza nombre y categorías del rubro completo.
func (uc *RubroUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarRubroRequest) (*dto.RubroResponse, error) {
	if in.Nombre == "" {
		return nil, fmt.Errorf("el nombre del rubro es requerido: %w", domain.ErrInvalidInput)
	}
	if err := validarCategorias(in.Categorias); err != nil {
		return nil, err
	}

	rubro, err := uc.rubros.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rubro == nil {
		return nil, fmt.Errorf("rubro no encontrado: %w", domain.ErrNotFound)
	}

	rubro.Nombre = in.Nombre
	rubro.Categorias = in.Categorias
	if err := uc.rubros.Update(ctx, rubro); err != nil {
		return nil, err
	}
	out := toRubroResponse(rubro)
	return &out, nil
}

// Eliminar borra el rubro completo.
func (uc *RubroUseCase) Eliminar(ctx context.Context, id string) error {
	rubro, err := uc.rubros.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if rubro == nil {
		return fmt.Errorf("rubro no encontrado: %w", domain.ErrNotFound)
	}
	return uc.rubros.Delete(ctx, id)
}

// QuitarCategoria saca del rubro la categoría con ese nombre. Si la categoría
// no existe el rubro queda igual y no es un error.
func (uc *RubroUseCase) QuitarCategoria(ctx context.Context, id, nombreCategoria string) (*dto.RubroResponse, error) {
	rubro, err := uc.rubros.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rubro == nil {
		return nil, fmt.Errorf("rubro no encontrado: %w", domain.ErrNotFound)
	}

	filtradas := rubro.Categorias[:0:0]
	for _, cat := range rubro.Categorias {
		if cat.Nombre != nombreCategoria {
			filtradas = append(filtradas, cat)
		}
	}
	rubro.Categorias = filtradas

	if err := uc.rubros.Update(ctx, rubro); err != nil {
		return nil, err
	}
	out := toRubroResponse(rubro)
	return &out, nil
}

func toRubroResponse(r *entity.Rubric) dto.RubroResponse {
	return dto.RubroResponse{
		ID:         r.ID,
		Nombre:     r.Nombre,
		Categorias: r.Categorias,
		CreatedAt:  r.CreatedAt,
	}
}
