package repository

import (
	"context"

	"github.com/soundwave-studio/almacen/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para las fichas de
// almacén (DIP). GetByID devuelve (nil, nil) si no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.InventoryProduct) error
	GetByID(ctx context.Context, id string) (*entity.InventoryProduct, error)
	List(ctx context.Context) ([]*entity.InventoryProduct, error)
	Update(ctx context.Context, product *entity.InventoryProduct) error
	Delete(ctx context.Context, id string) error
}
