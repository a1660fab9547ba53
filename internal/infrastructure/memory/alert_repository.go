package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/soundwave-studio/almacen/internal/domain"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo alertas de stock en memoria, un mapa producto → alerta que
// materializa el invariante de a-lo-sumo-una-alerta-por-producto.
type AlertRepo struct {
	mu     sync.RWMutex
	alerts map[string]*entity.StockAlert // clave: ProductID
}

// NewAlertRepository construye el repositorio vacío.
func NewAlertRepository() *AlertRepo {
	return &AlertRepo{alerts: make(map[string]*entity.StockAlert)}
}

// GetByProduct devuelve la alerta viva del producto o (nil, nil).
func (r *AlertRepo) GetByProduct(ctx context.Context, productID string) (*entity.StockAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.alerts[productID]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

// Replace sustituye la alerta del producto por la nueva.
func (r *AlertRepo) Replace(ctx context.Context, alert *entity.StockAlert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *alert
	r.alerts[alert.ProductID] = &cp
	return nil
}

// DeleteByProduct elimina la alerta viva del producto, si existe.
func (r *AlertRepo) DeleteByProduct(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.alerts, productID)
	return nil
}

// List devuelve todas las alertas vivas, más recientes primero.
func (r *AlertRepo) List(ctx context.Context) ([]*entity.StockAlert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.StockAlert, 0, len(r.alerts))
	for _, a := range r.alerts {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

// ListUnread devuelve las alertas vivas no leídas, más recientes primero.
func (r *AlertRepo) ListUnread(ctx context.Context) ([]*entity.StockAlert, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.StockAlert, 0, len(all))
	for _, a := range all {
		if !a.Read {
			out = append(out, a)
		}
	}
	return out, nil
}

// MarkRead marca la alerta como leída; ErrNotFound si el ID no existe.
func (r *AlertRepo) MarkRead(ctx context.Context, alertID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.alerts {
		if a.ID == alertID {
			a.Read = true
			return nil
		}
	}
	return domain.ErrNotFound
}
