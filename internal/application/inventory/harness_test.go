package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/soundwave-studio/almacen/internal/application/inventory"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
	"github.com/soundwave-studio/almacen/internal/infrastructure/memory"
)

// engine entorno de prueba completo sobre repositorios en memoria.
type engine struct {
	catalog   *memory.CatalogRepo
	products  *memory.ProductRepo
	movements *memory.MovementRepo
	alertRepo *memory.AlertRepo

	reconciler *inventory.ReconcileUseCase
	alerts     *inventory.StockAlertUseCase
	apply      *inventory.ApplyMovementUseCase
	queries    *inventory.QueryUseCase
	updater    *inventory.UpdateProductUseCase
	saleSync   *inventory.SaleSyncUseCase
}

func newEngine(t *testing.T) *engine {
	t.Helper()
	log := zerolog.Nop()
	settings := inventory.DefaultSettings()

	e := &engine{
		catalog:   memory.NewCatalogRepository(),
		products:  memory.NewProductRepository(),
		movements: memory.NewMovementRepository(),
		alertRepo: memory.NewAlertRepository(),
	}
	e.reconciler = inventory.NewReconcileUseCase(e.catalog, e.products, settings, log)
	e.alerts = inventory.NewStockAlertUseCase(e.alertRepo, settings, log)
	e.apply = inventory.NewApplyMovementUseCase(e.products, e.movements, e.alerts, log)
	e.queries = inventory.NewQueryUseCase(e.reconciler, e.products, e.movements, settings)
	e.updater = inventory.NewUpdateProductUseCase(e.products)
	e.saleSync = inventory.NewSaleSyncUseCase(e.apply, log)
	return e
}

// seedProduct crea una ficha de almacén directamente con el stock indicado.
func (e *engine) seedProduct(t *testing.T, id, name string, stock, stockMinimum int) *entity.InventoryProduct {
	t.Helper()
	now := time.Now()
	p := &entity.InventoryProduct{
		ID:           id,
		Name:         name,
		Stock:        stock,
		StockMinimum: stockMinimum,
		StockMaximum: 100,
		SellPrice:    decimal.Zero,
		PurchaseCost: decimal.Zero,
		Location:     "Almacén Principal",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, e.products.Create(context.Background(), p))
	return p
}

func decimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// catalogProduct entrada de catálogo activa.
func catalogProduct(id, code, name, category string) *entity.CatalogProduct {
	return &entity.CatalogProduct{
		ID:       id,
		Code:     code,
		Name:     name,
		Category: category,
		Active:   true,
	}
}
