package repository

import (
	"context"

	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia del catálogo.
// Las lecturas por ID devuelven (nil, nil) cuando no hay registro.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error

	// CreateBatch inserta todos los productos en un solo lote. Si alguna fila
	// falla no queda ninguna insertada.
	CreateBatch(ctx context.Context, productos []*entity.Product) error

	GetByID(ctx context.Context, id string) (*entity.Product, error)

	// ExistsSKU indica si ya hay un producto con ese SKU.
	ExistsSKU(ctx context.Context, sku string) (bool, error)

	// List devuelve todos los productos con la sucursal expandida.
	List(ctx context.Context) ([]*entity.Product, error)

	// ListBySucursal devuelve los productos de una sucursal con la referencia expandida.
	ListBySucursal(ctx context.Context, sucursalID string) ([]*entity.Product, error)

	Update(ctx context.Context, p *entity.Product) error

	// SetActivo cambia solo la marca activo del producto.
	SetActivo(ctx context.Context, id string, activo bool) error

	Delete(ctx context.Context, id string) error
}
