package repository

import (
	"context"
	"time"

	"github.com/soundwave-studio/almacen/internal/domain/entity"
)

// MovementFilter filtros opcionales para listar movimientos. Cero valores se
// ignoran; Limit <= 0 significa sin límite.
type MovementFilter struct {
	ProductID string
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// MovementRepository define el puerto de persistencia del libro de
// movimientos: append-only, el listado siempre sale del más reciente al más
// antiguo. No existe Update ni Delete. GetByID devuelve ErrNotFound si el ID
// no existe.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	GetByID(ctx context.Context, id string) (*entity.Movement, error)
	List(ctx context.Context, filter MovementFilter) ([]*entity.Movement, error)
}
