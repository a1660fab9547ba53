package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/soundwave-studio/almacen/internal/domain"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, code, category, stock, stock_minimum, stock_maximum,
	sell_price, purchase_cost, supplier, location, notes, created_at, updated_at`

// Create persiste una ficha de almacén nueva.
func (r *ProductRepo) Create(ctx context.Context, p *entity.InventoryProduct) error {
	query := `
		INSERT INTO inventory_products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Code, p.Category, p.Stock, p.StockMinimum, p.StockMaximum,
		p.SellPrice, p.PurchaseCost, p.Supplier, p.Location, p.Notes, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory product: %w", err)
	}
	return nil
}

// GetByID obtiene una ficha por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.InventoryProduct, error) {
	query := `SELECT ` + productColumns + ` FROM inventory_products WHERE id = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory product: %w", err)
	}
	return p, nil
}

// List devuelve todas las fichas ordenadas por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.InventoryProduct, error) {
	query := `SELECT ` + productColumns + ` FROM inventory_products ORDER BY name, id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list inventory products: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryProduct
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update sobreescribe una ficha existente.
func (r *ProductRepo) Update(ctx context.Context, p *entity.InventoryProduct) error {
	query := `
		UPDATE inventory_products
		SET name = $2, code = $3, category = $4, stock = $5, stock_minimum = $6,
			stock_maximum = $7, sell_price = $8, purchase_cost = $9, supplier = $10,
			location = $11, notes = $12, updated_at = $13
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.ID, p.Name, p.Code, p.Category, p.Stock, p.StockMinimum, p.StockMaximum,
		p.SellPrice, p.PurchaseCost, p.Supplier, p.Location, p.Notes, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update inventory product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// Delete elimina la ficha; el libro de movimientos no se toca.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM inventory_products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory product: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.InventoryProduct, error) {
	var p entity.InventoryProduct
	err := row.Scan(&p.ID, &p.Name, &p.Code, &p.Category, &p.Stock, &p.StockMinimum,
		&p.StockMaximum, &p.SellPrice, &p.PurchaseCost, &p.Supplier, &p.Location,
		&p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
