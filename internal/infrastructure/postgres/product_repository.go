package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpereyra/gestion-comercio-api/internal/domain"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo adaptador de persistencia del catálogo sobre PostgreSQL.
// Los atributos dinámicos se guardan como JSONB.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

func atributosJSON(atributos []entity.AtributoProducto) ([]byte, error) {
	if atributos == nil {
		atributos = []entity.AtributoProducto{}
	}
	return json.Marshal(atributos)
}

// fechaVencimientoArg convierte la fecha cero en NULL.
func fechaVencimientoArg(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// Create inserta un producto. Un SKU repetido devuelve ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	attrs, err := atributosJSON(p.Atributos)
	if err != nil {
		return fmt.Errorf("serializar atributos: %w", err)
	}
	query := `
		INSERT INTO products (id, nombre, rubro, categoria, atributos, precio_costo, precio_publico, cantidad_stock, sku, fabricante, sucursal_id, imagen_url, fecha_vencimiento, fecha_ultima_actualizacion, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12, $13, $14, $15)`
	_, err = r.pool.Exec(ctx, query,
		p.ID, p.Nombre, p.Rubro, p.Categoria, attrs, p.PrecioCosto, p.PrecioPublico,
		p.CantidadStock, p.SKU, p.Fabricante, p.SucursalID, p.ImagenURL,
		fechaVencimientoArg(p.FechaVencimiento), p.FechaUltimaActualizacion, p.Activo,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// CreateBatch inserta todos los productos dentro de una transacción: si una
// fila falla no queda ninguna insertada.
func (r *ProductRepo) CreateBatch(ctx context.Context, productos []*entity.Product) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	query := `
		INSERT INTO products (id, nombre, rubro, categoria, atributos, precio_costo, precio_publico, cantidad_stock, sku, fabricante, sucursal_id, imagen_url, fecha_vencimiento, fecha_ultima_actualizacion, activo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12, $13, $14, $15)`
	for _, p := range productos {
		attrs, err := atributosJSON(p.Atributos)
		if err != nil {
			return fmt.Errorf("serializar atributos: %w", err)
		}
		batch.Queue(query,
			p.ID, p.Nombre, p.Rubro, p.Categoria, attrs, p.PrecioCosto, p.PrecioPublico,
			p.CantidadStock, p.SKU, p.Fabricante, p.SucursalID, p.ImagenURL,
			fechaVencimientoArg(p.FechaVencimiento), p.FechaUltimaActualizacion, p.Activo,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert batch productos: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

const productoCols = `
	id, nombre, rubro, categoria, atributos, precio_costo, precio_publico,
	cantidad_stock, COALESCE(sku, ''), fabricante, sucursal_id, imagen_url,
	COALESCE(fecha_vencimiento, 'epoch'::timestamptz), fecha_ultima_actualizacion, activo`

func scanProducto(row pgx.Row, extra ...any) (*entity.Product, error) {
	var p entity.Product
	var attrs []byte
	var vencimiento time.Time
	dest := []any{
		&p.ID, &p.Nombre, &p.Rubro, &p.Categoria, &attrs, &p.PrecioCosto, &p.PrecioPublico,
		&p.CantidadStock, &p.SKU, &p.Fabricante, &p.SucursalID, &p.ImagenURL,
		&vencimiento, &p.FechaUltimaActualizacion, &p.Activo,
	}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	if vencimiento.Unix() != 0 {
		p.FechaVencimiento = vencimiento
	}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &p.Atributos); err != nil {
			return nil, fmt.Errorf("atributos inválidos: %w", err)
		}
	}
	return &p, nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productoCols + ` FROM products WHERE id = $1`
	p, err := scanProducto(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// ExistsSKU indica si ya existe un producto con ese SKU.
func (r *ProductRepo) ExistsSKU(ctx context.Context, sku string) (bool, error) {
	var existe bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE sku = $1)`, sku).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("exists sku: %w", err)
	}
	return existe, nil
}

func (r *ProductRepo) listQuery(ctx context.Context, where string, args ...any) ([]*entity.Product, error) {
	query := `
		SELECT p.id, p.nombre, p.rubro, p.categoria, p.atributos, p.precio_costo, p.precio_publico,
		       p.cantidad_stock, COALESCE(p.sku, ''), p.fabricante, p.sucursal_id, p.imagen_url,
		       COALESCE(p.fecha_vencimiento, 'epoch'::timestamptz), p.fecha_ultima_actualizacion, p.activo,
		       s.id, s.nombre
		FROM products p
		JOIN sucursales s ON s.id = p.sucursal_id
		` + where + `
		ORDER BY p.nombre ASC`
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var suc entity.Sucursal
		p, err := scanProducto(rows, &suc.ID, &suc.Nombre)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		p.Sucursal = &suc
		list = append(list, p)
	}
	return list, rows.Err()
}

// List devuelve todos los productos con la sucursal expandida.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return r.listQuery(ctx, "")
}

// ListBySucursal devuelve los productos de una sucursal.
func (r *ProductRepo) ListBySucursal(ctx context.Context, sucursalID string) ([]*entity.Product, error) {
	return r.listQuery(ctx, "WHERE p.sucursal_id = $1", sucursalID)
}

// Update guarda los campos editables del producto.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	attrs, err := atributosJSON(p.Atributos)
	if err != nil {
		return fmt.Errorf("serializar atributos: %w", err)
	}
	query := `
		UPDATE products
		SET nombre = $2, rubro = $3, categoria = $4, atributos = $5, precio_costo = $6,
		    precio_publico = $7, cantidad_stock = $8, fabricante = $9, sucursal_id = $10,
		    imagen_url = $11, fecha_vencimiento = $12, fecha_ultima_actualizacion = $13
		WHERE id = $1`
	_, err = r.pool.Exec(ctx, query,
		p.ID, p.Nombre, p.Rubro, p.Categoria, attrs, p.PrecioCosto, p.PrecioPublico,
		p.CantidadStock, p.Fabricante, p.SucursalID, p.ImagenURL,
		fechaVencimientoArg(p.FechaVencimiento), p.FechaUltimaActualizacion,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	return nil
}

// SetActivo cambia solo la marca activo.
func (r *ProductRepo) SetActivo(ctx context.Context, id string, activo bool) error {
	if _, err := r.pool.Exec(ctx, `UPDATE products SET activo = $2 WHERE id = $1`, id, activo); err != nil {
		return fmt.Errorf("set activo: %w", err)
	}
	return nil
}

// Delete elimina el producto en forma definitiva.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}
