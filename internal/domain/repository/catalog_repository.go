package repository

import (
	"context"

	"github.com/soundwave-studio/almacen/internal/domain/entity"
)

// CatalogRepository define el puerto de SOLO LECTURA hacia el catálogo
// (propiedad de otro módulo). El motor de almacén nunca escribe en él.
type CatalogRepository interface {
	ListActive(ctx context.Context) ([]*entity.CatalogProduct, error)
}
