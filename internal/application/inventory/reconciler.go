package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

// ReconcileUseCase sincroniza en un solo sentido el conjunto de fichas de
// almacén contra el conjunto activo del catálogo: crea las que faltan,
// refresca los campos espejo (name, code, category) y elimina las huérfanas.
// El historial de movimientos de una ficha eliminada queda en el libro.
// La pasada es idempotente: sin cambios en el catálogo no escribe nada.
type ReconcileUseCase struct {
	catalogRepo repository.CatalogRepository
	productRepo repository.ProductRepository
	settings    Settings
	log         zerolog.Logger
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(
	catalogRepo repository.CatalogRepository,
	productRepo repository.ProductRepository,
	settings Settings,
	log zerolog.Logger,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		catalogRepo: catalogRepo,
		productRepo: productRepo,
		settings:    settings,
		log:         log,
	}
}

// Reconcile ejecuta una pasada de sincronización y devuelve el conjunto de
// fichas resultante. Solo escribe los registros que efectivamente cambiaron.
func (uc *ReconcileUseCase) Reconcile(ctx context.Context) ([]*entity.InventoryProduct, error) {
	active, err := uc.catalogRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar catálogo activo: %w", err)
	}
	existing, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar fichas de almacén: %w", err)
	}

	byID := make(map[string]*entity.InventoryProduct, len(existing))
	for _, p := range existing {
		byID[p.ID] = p
	}
	activeIDs := make(map[string]bool, len(active))

	now := time.Now()
	var created, updated, removed int
	result := make([]*entity.InventoryProduct, 0, len(active))

	for _, cat := range active {
		activeIDs[cat.ID] = true
		p, ok := byID[cat.ID]
		if !ok {
			p = uc.newProduct(cat, now)
			if err := uc.productRepo.Create(ctx, p); err != nil {
				return nil, fmt.Errorf("crear ficha %s: %w", cat.ID, err)
			}
			created++
			result = append(result, p)
			continue
		}
		// Ficha existente: refrescar solo los campos espejo, stock y umbrales intactos.
		if p.Name != cat.Name || p.Code != cat.Code || p.Category != cat.Category {
			p.Name = cat.Name
			p.Code = cat.Code
			p.Category = cat.Category
			p.UpdatedAt = now
			if err := uc.productRepo.Update(ctx, p); err != nil {
				return nil, fmt.Errorf("actualizar ficha %s: %w", p.ID, err)
			}
			updated++
		}
		result = append(result, p)
	}

	// Huérfanas: fichas cuyo ID ya no está activo en el catálogo. Se eliminan;
	// sus movimientos permanecen en el libro.
	for _, p := range existing {
		if activeIDs[p.ID] {
			continue
		}
		if err := uc.productRepo.Delete(ctx, p.ID); err != nil {
			return nil, fmt.Errorf("eliminar ficha huérfana %s: %w", p.ID, err)
		}
		removed++
	}

	if created > 0 || updated > 0 || removed > 0 {
		uc.log.Info().
			Int("created", created).
			Int("updated", updated).
			Int("removed", removed).
			Msg("reconciliación de almacén aplicada")
	}
	return result, nil
}

// newProduct crea la ficha inicial para un producto del catálogo: stock 0,
// umbrales por defecto, costos en cero. Si el catálogo trae precio de venta
// se usa como precio inicial.
func (uc *ReconcileUseCase) newProduct(cat *entity.CatalogProduct, now time.Time) *entity.InventoryProduct {
	price := decimal.Zero
	if cat.SellPrice.GreaterThan(decimal.Zero) {
		price = cat.SellPrice
	}
	return &entity.InventoryProduct{
		ID:           cat.ID,
		Name:         cat.Name,
		Code:         cat.Code,
		Category:     cat.Category,
		Stock:        0,
		StockMinimum: uc.settings.DefaultStockMinimum,
		StockMaximum: uc.settings.DefaultStockMaximum,
		SellPrice:    price,
		PurchaseCost: decimal.Zero,
		Location:     uc.settings.DefaultLocation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
