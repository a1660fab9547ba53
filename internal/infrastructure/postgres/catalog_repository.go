package postgres

import (
	"context"
	"fmt"

	"github.com/soundwave-studio/almacen/internal/domain/entity"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo adaptador de SOLO LECTURA sobre la tabla del catálogo. Este
// módulo no tiene sentencias de escritura contra catalog_products.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListActive devuelve los productos activos del catálogo.
func (r *CatalogRepo) ListActive(ctx context.Context) ([]*entity.CatalogProduct, error) {
	query := `
		SELECT id, code, name, category, sell_price, active, created_at, updated_at
		FROM catalog_products WHERE active ORDER BY created_at`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list catalog products: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogProduct
	for rows.Next() {
		var p entity.CatalogProduct
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Category, &p.SellPrice,
			&p.Active, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan catalog product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
