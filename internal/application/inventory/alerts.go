package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
	dominv "github.com/soundwave-studio/almacen/internal/domain/inventory"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

// StockAlertUseCase deriva la alerta viva de cada producto a partir de su
// clasificación de stock. Tras cada movimiento se recalcula: critical o low
// reemplazan la alerta anterior del producto; normal la elimina sin crear
// otra. Las alertas no caducan solas; markRead es la única otra mutación.
type StockAlertUseCase struct {
	alertRepo repository.AlertRepository
	settings  Settings
	log       zerolog.Logger
}

// NewStockAlertUseCase construye el caso de uso.
func NewStockAlertUseCase(alertRepo repository.AlertRepository, settings Settings, log zerolog.Logger) *StockAlertUseCase {
	return &StockAlertUseCase{alertRepo: alertRepo, settings: settings, log: log}
}

// Recompute reclasifica el stock del producto y reemplaza (o elimina) su
// alerta viva.
func (uc *StockAlertUseCase) Recompute(ctx context.Context, product *entity.InventoryProduct) error {
	if !uc.settings.AutoAlerts {
		return nil
	}
	level := dominv.Classify(product.Stock, product.StockMinimum)
	if level == dominv.LevelNormal {
		if err := uc.alertRepo.DeleteByProduct(ctx, product.ID); err != nil {
			return fmt.Errorf("eliminar alerta de %s: %w", product.ID, err)
		}
		return nil
	}

	alert := &entity.StockAlert{
		ID:           uuid.New().String(),
		ProductID:    product.ID,
		ProductName:  product.Name,
		Level:        string(level),
		Stock:        product.Stock,
		StockMinimum: product.StockMinimum,
		Message:      alertMessage(product, level),
		Timestamp:    time.Now(),
		Read:         false,
	}
	if err := uc.alertRepo.Replace(ctx, alert); err != nil {
		return fmt.Errorf("reemplazar alerta de %s: %w", product.ID, err)
	}
	uc.log.Warn().
		Str("product_id", product.ID).
		Str("level", alert.Level).
		Int("stock", product.Stock).
		Msg("alerta de stock")
	return nil
}

// MarkRead marca una alerta como leída (ErrNotFound si no existe).
func (uc *StockAlertUseCase) MarkRead(ctx context.Context, alertID string) error {
	return uc.alertRepo.MarkRead(ctx, alertID)
}

// List devuelve todas las alertas vivas.
func (uc *StockAlertUseCase) List(ctx context.Context) ([]*entity.StockAlert, error) {
	return uc.alertRepo.List(ctx)
}

// ListUnread devuelve las alertas vivas no leídas.
func (uc *StockAlertUseCase) ListUnread(ctx context.Context) ([]*entity.StockAlert, error) {
	return uc.alertRepo.ListUnread(ctx)
}

func alertMessage(product *entity.InventoryProduct, level dominv.StockLevel) string {
	if level == dominv.LevelCritical {
		return fmt.Sprintf("¡%s agotado!", product.Name)
	}
	return fmt.Sprintf("Stock bajo para %s: quedan %d", product.Name, product.Stock)
}
