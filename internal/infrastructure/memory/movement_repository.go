package memory

import (
	"context"
	"sync"

	"github.com/soundwave-studio/almacen/internal/domain"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo libro de movimientos en memoria: lista append-only con el más
// reciente primero.
type MovementRepo struct {
	mu        sync.RWMutex
	movements []*entity.Movement
}

// NewMovementRepository construye el libro vacío.
func NewMovementRepository() *MovementRepo {
	return &MovementRepo{}
}

// Create anexa un movimiento al frente del libro.
func (r *MovementRepo) Create(ctx context.Context, movement *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *movement
	r.movements = append([]*entity.Movement{&cp}, r.movements...)
	return nil
}

// GetByID devuelve un movimiento por ID o ErrNotFound.
func (r *MovementRepo) GetByID(ctx context.Context, id string) (*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.movements {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve los movimientos que pasan el filtro, del más reciente al más
// antiguo.
func (r *MovementRepo) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.Movement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Movement
	skipped := 0
	for _, m := range r.movements {
		if !matches(m, filter) {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		cp := *m
		out = append(out, &cp)
		if filter.Limit > 0 && len(out) >= filter.Limit {
			break
		}
	}
	return out, nil
}

func matches(m *entity.Movement, f repository.MovementFilter) bool {
	if f.ProductID != "" && m.ProductID != f.ProductID {
		return false
	}
	if f.Type != "" && m.Type != f.Type {
		return false
	}
	if f.From != nil && m.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && m.Timestamp.After(*f.To) {
		return false
	}
	return true
}
