package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jpereyra/gestion-comercio-api/internal/domain"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/repository"
)

var _ repository.RubricRepository = (*RubricRepo)(nil)

// RubricRepo adaptador de persistencia de rubros. Las categorías (con sus
// atributos anidados) se guardan como un documento JSONB dentro del rubro.
type RubricRepo struct {
	pool *pgxpool.Pool
}

// NewRubricRepository construye el adaptador.
func NewRubricRepository(pool *pgxpool.Pool) *RubricRepo {
	return &RubricRepo{pool: pool}
}

func categoriasJSON(categorias []entity.Categoria) ([]byte, error) {
	if categorias == nil {
		categorias = []entity.Categoria{}
	}
	return json.Marshal(categorias)
}

// Create inserta un rubro. Un nombre repetido devuelve ErrDuplicate.
func (r *RubricRepo) Create(ctx context.Context, rubro *entity.Rubric) error {
	cats, err := categoriasJSON(rubro.Categorias)
	if err != nil {
		return fmt.Errorf("serializar categorías: %w", err)
	}
	query := `INSERT INTO rubrics (id, nombre, categorias, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.pool.Exec(ctx, query, rubro.ID, rubro.Nombre, cats, rubro.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert rubro: %w", err)
	}
	return nil
}

func scanRubro(row pgx.Row) (*entity.Rubric, error) {
	var rb entity.Rubric
	var cats []byte
	if err := row.Scan(&rb.ID, &rb.Nombre, &cats, &rb.CreatedAt); err != nil {
		return nil, err
	}
	if len(cats) > 0 {
		if err := json.Unmarshal(cats, &rb.Categorias); err != nil {
			return nil, fmt.Errorf("categorías inválidas: %w", err)
		}
	}
	return &rb, nil
}

// GetByID obtiene un rubro por ID.
func (r *RubricRepo) GetByID(ctx context.Context, id string) (*entity.Rubric, error) {
	rb, err := scanRubro(r.pool.QueryRow(ctx,
		`SELECT id, nombre, categorias, created_at FROM rubrics WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rubro: %w", err)
	}
	return rb, nil
}

// GetByNombre obtiene un rubro por nombre exacto.
func (r *RubricRepo) GetByNombre(ctx context.Context, nombre string) (*entity.Rubric, error) {
	rb, err := scanRubro(r.pool.QueryRow(ctx,
		`SELECT id, nombre, categorias, created_at FROM rubrics WHERE nombre = $1`, nombre))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get rubro por nombre: %w", err)
	}
	return rb, nil
}

// List devuelve todos los rubros.
func (r *RubricRepo) List(ctx context.Context) ([]*entity.Rubric, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, nombre, categorias, created_at FROM rubrics ORDER BY nombre ASC`)
	if err != nil {
		return nil, fmt.Errorf("list rubros: %w", err)
	}
	defer rows.Close()

	var list []*entity.Rubric
	for rows.Next() {
		rb, err := scanRubro(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rubro: %w", err)
		}
		list = append(list, rb)
	}
	return list, rows.Err()
}

// Update reemplaza nombre y categorías del rubro.
func (r *RubricRepo) Update(ctx context.Context, rubro *entity.Rubric) error {
	cats, err := categoriasJSON(rubro.Categorias)
	if err != nil {
		return fmt.Errorf("serializar categorías: %w", err)
	}
	query := `UPDATE rubrics SET nombre = $2, categorias = $3 WHERE id = $1`
	if _, err := r.pool.Exec(ctx, query, rubro.ID, rubro.Nombre, cats); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update rubro: %w", err)
	}
	return nil
}

// Delete elimina el rubro.
func (r *RubricRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM rubrics WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete rubro: %w", err)
	}
	return nil
}
