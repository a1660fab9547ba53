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

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo alertas de stock sobre PostgreSQL. El UNIQUE sobre product_id de
// la tabla respalda el invariante de una alerta viva por producto; Replace se
// apoya en ON CONFLICT para sustituirla en una sola sentencia.
type AlertRepo struct {
	q Querier
}

// NewAlertRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertRepository(q Querier) *AlertRepo {
	return &AlertRepo{q: q}
}

const alertColumns = `id, product_id, product_name, level, stock, stock_minimum, message, ts, read`

// GetByProduct devuelve la alerta viva del producto o (nil, nil).
func (r *AlertRepo) GetByProduct(ctx context.Context, productID string) (*entity.StockAlert, error) {
	query := `SELECT ` + alertColumns + ` FROM stock_alerts WHERE product_id = $1`
	a, err := scanAlert(r.q.QueryRow(ctx, query, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

// Replace sustituye la alerta del producto por la nueva.
func (r *AlertRepo) Replace(ctx context.Context, a *entity.StockAlert) error {
	query := `
		INSERT INTO stock_alerts (` + alertColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (product_id) DO UPDATE SET
			id = EXCLUDED.id, product_name = EXCLUDED.product_name,
			level = EXCLUDED.level, stock = EXCLUDED.stock,
			stock_minimum = EXCLUDED.stock_minimum, message = EXCLUDED.message,
			ts = EXCLUDED.ts, read = EXCLUDED.read`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.ProductID, a.ProductName, a.Level, a.Stock, a.StockMinimum,
		a.Message, a.Timestamp, a.Read,
	)
	if err != nil {
		return fmt.Errorf("replace alert: %w", err)
	}
	return nil
}

// DeleteByProduct elimina la alerta viva del producto, si existe.
func (r *AlertRepo) DeleteByProduct(ctx context.Context, productID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stock_alerts WHERE product_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	return nil
}

// List devuelve todas las alertas vivas, más recientes primero.
func (r *AlertRepo) List(ctx context.Context) ([]*entity.StockAlert, error) {
	return r.list(ctx, `SELECT `+alertColumns+` FROM stock_alerts ORDER BY ts DESC`)
}

// ListUnread devuelve las alertas vivas no leídas, más recientes primero.
func (r *AlertRepo) ListUnread(ctx context.Context) ([]*entity.StockAlert, error) {
	return r.list(ctx, `SELECT `+alertColumns+` FROM stock_alerts WHERE NOT read ORDER BY ts DESC`)
}

func (r *AlertRepo) list(ctx context.Context, query string) ([]*entity.StockAlert, error) {
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockAlert
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// MarkRead marca la alerta como leída; ErrNotFound si el ID no existe.
func (r *AlertRepo) MarkRead(ctx context.Context, alertID string) error {
	cmd, err := r.q.Exec(ctx, `UPDATE stock_alerts SET read = TRUE WHERE id = $1`, alertID)
	if err != nil {
		return fmt.Errorf("mark alert read: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAlert(row pgx.Row) (*entity.StockAlert, error) {
	var a entity.StockAlert
	err := row.Scan(&a.ID, &a.ProductID, &a.ProductName, &a.Level, &a.Stock,
		&a.StockMinimum, &a.Message, &a.Timestamp, &a.Read)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
