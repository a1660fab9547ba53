package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/soundwave-studio/almacen/internal/domain"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos sobre PostgreSQL. Solo INSERT y SELECT:
// el libro es append-only por contrato.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, product_id, product_name, type, quantity, stock_before,
	stock_after, reason, operator, supplier, location, destination_location, notes, ts`

// Create anexa un movimiento al libro.
func (r *MovementRepo) Create(ctx context.Context, m *entity.Movement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventory_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.ProductName, m.Type, m.Quantity, m.StockBefore,
		m.StockAfter, m.Reason, m.Operator, m.Supplier, m.Location,
		m.DestinationLocation, m.Notes, m.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	query := `SELECT ` + movementColumns + ` FROM inventory_movements WHERE id = $1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return m, nil
}

// List devuelve movimientos del más reciente al más antiguo aplicando los
// filtros presentes. Limit <= 0 significa sin límite.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + movementColumns + ` FROM inventory_movements`)

	var conditions []string
	var args []any
	add := func(cond string, value any) {
		args = append(args, value)
		conditions = append(conditions, cond+"$"+strconv.Itoa(len(args)))
	}
	if filter.ProductID != "" {
		add("product_id = ", filter.ProductID)
	}
	if filter.Type != "" {
		add("type = ", filter.Type)
	}
	if filter.From != nil {
		add("ts >= ", *filter.From)
	}
	if filter.To != nil {
		add("ts <= ", *filter.To)
	}
	if len(conditions) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	sb.WriteString(" ORDER BY ts DESC, id DESC")
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		sb.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.Movement, error) {
	var m entity.Movement
	err := row.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity,
		&m.StockBefore, &m.StockAfter, &m.Reason, &m.Operator, &m.Supplier,
		&m.Location, &m.DestinationLocation, &m.Notes, &m.Timestamp)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
