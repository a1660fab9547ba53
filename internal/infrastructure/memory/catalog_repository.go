// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria protegidas por mutex. Sirve como backend intercambiable para
// despliegues de un solo proceso y como doble de pruebas de los casos de uso.
package memory

import (
	"context"
	"sync"

	"github.com/soundwave-studio/almacen/internal/domain/entity"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo catálogo en memoria, sembrable desde fuera para simular las
// altas, bajas y desactivaciones que hace el módulo Catálogo.
type CatalogRepo struct {
	mu       sync.RWMutex
	products []*entity.CatalogProduct
}

// NewCatalogRepository construye el catálogo vacío.
func NewCatalogRepository() *CatalogRepo {
	return &CatalogRepo{}
}

// Seed reemplaza el contenido completo del catálogo.
func (r *CatalogRepo) Seed(products ...*entity.CatalogProduct) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products = make([]*entity.CatalogProduct, len(products))
	copy(r.products, products)
}

// ListActive devuelve los productos activos del catálogo.
func (r *CatalogRepo) ListActive(ctx context.Context) ([]*entity.CatalogProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.CatalogProduct, 0, len(r.products))
	for _, p := range r.products {
		if p.Active {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}
