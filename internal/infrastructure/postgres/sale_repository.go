package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jpereyra/gestion-comercio-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo lectura de ventas finalizadas. La tabla pertenece al módulo de
// ventas; acá no se escribe nunca.
type SaleRepo struct {
	pool *pgxpool.Pool
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(pool *pgxpool.Pool) *SaleRepo {
	return &SaleRepo{pool: pool}
}

// SumTotal suma los totales de venta de la sucursal dentro de [desde, hasta].
func (r *SaleRepo) SumTotal(ctx context.Context, sucursalID string, desde, hasta time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(total), 0)
		FROM sales
		WHERE sucursal_id = $1 AND fecha_venta BETWEEN $2 AND $3`
	var total decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, sucursalID, desde, hasta).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum ventas: %w", err)
	}
	return total, nil
}
