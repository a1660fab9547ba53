package repository

import (
	"context"

	"github.com/soundwave-studio/almacen/internal/domain/entity"
)

// AlertRepository define el puerto de persistencia de alertas de stock.
// Invariante: a lo sumo una alerta por producto; Replace elimina la anterior
// del mismo producto e inserta la nueva en una sola operación lógica.
type AlertRepository interface {
	GetByProduct(ctx context.Context, productID string) (*entity.StockAlert, error)
	Replace(ctx context.Context, alert *entity.StockAlert) error
	DeleteByProduct(ctx context.Context, productID string) error
	List(ctx context.Context) ([]*entity.StockAlert, error)
	ListUnread(ctx context.Context) ([]*entity.StockAlert, error)
	// MarkRead marca la alerta como leída; ErrNotFound si el ID no existe.
	MarkRead(ctx context.Context, alertID string) error
}
