package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/soundwave-studio/almacen/internal/domain"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo fichas de almacén en memoria (mapa id → ficha).
type ProductRepo struct {
	mu       sync.RWMutex
	products map[string]*entity.InventoryProduct
}

// NewProductRepository construye el repositorio vacío.
func NewProductRepository() *ProductRepo {
	return &ProductRepo{products: make(map[string]*entity.InventoryProduct)}
}

// Create persiste una ficha nueva.
func (r *ProductRepo) Create(ctx context.Context, product *entity.InventoryProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

// GetByID devuelve la ficha o (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.InventoryProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

// List devuelve todas las fichas ordenadas por ID para un recorrido estable.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.InventoryProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.InventoryProduct, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update sobreescribe una ficha existente.
func (r *ProductRepo) Update(ctx context.Context, product *entity.InventoryProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	cp := *product
	r.products[product.ID] = &cp
	return nil
}

// Delete elimina la ficha; el historial de movimientos no se toca.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}
