package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/soundwave-studio/almacen/internal/application/dto"
	"github.com/soundwave-studio/almacen/internal/domain"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
	dominv "github.com/soundwave-studio/almacen/internal/domain/inventory"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

// QueryUseCase consultas de lectura del almacén: fichas (reconciliando
// primero contra el catálogo), movimientos filtrados, stock bajo/agotado y
// estadísticas agregadas.
type QueryUseCase struct {
	reconciler   *ReconcileUseCase
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	settings     Settings
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	reconciler *ReconcileUseCase,
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	settings Settings,
) *QueryUseCase {
	return &QueryUseCase{
		reconciler:   reconciler,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		settings:     settings,
	}
}

// GetInventoryProducts devuelve las fichas de almacén, reconciliando antes
// contra el catálogo para reflejar altas y bajas de productos.
func (uc *QueryUseCase) GetInventoryProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	products, err := uc.reconciler.Reconcile(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetMovements lista movimientos del libro, del más reciente al más antiguo,
// con filtros opcionales por producto, tipo y rango de fechas (RFC 3339).
func (uc *QueryUseCase) GetMovements(ctx context.Context, req dto.ListMovementsRequest) ([]*dto.MovementResponse, error) {
	if req.Type != "" && !entity.ValidMovementType(req.Type) {
		return nil, domain.ErrInvalidInput
	}
	filter := repository.MovementFilter{
		ProductID: req.ProductID,
		Type:      req.Type,
		Limit:     req.Limit,
		Offset:    req.Offset,
	}
	if req.DateFrom != "" {
		from, err := time.Parse(time.RFC3339, req.DateFrom)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.From = &from
	}
	if req.DateTo != "" {
		to, err := time.Parse(time.RFC3339, req.DateTo)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		filter.To = &to
	}

	movements, err := uc.movementRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listar movimientos: %w", err)
	}
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return out, nil
}

// GetLowStockProducts devuelve las fichas con stock <= mínimo configurado
// (incluye las agotadas).
func (uc *QueryUseCase) GetLowStockProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	return uc.filterProducts(ctx, func(p *entity.InventoryProduct) bool {
		return p.Stock <= p.StockMinimum
	})
}

// GetOutOfStockProducts devuelve las fichas con stock cero.
func (uc *QueryUseCase) GetOutOfStockProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	return uc.filterProducts(ctx, func(p *entity.InventoryProduct) bool {
		return p.Stock == 0
	})
}

func (uc *QueryUseCase) filterProducts(ctx context.Context, keep func(*entity.InventoryProduct) bool) ([]*dto.ProductResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar fichas de almacén: %w", err)
	}
	out := make([]*dto.ProductResponse, 0)
	for _, p := range products {
		if keep(p) {
			out = append(out, toProductResponse(p))
		}
	}
	return out, nil
}

// GetStats calcula los agregados del inventario: totales, valor a costo y a
// precio de venta, conteos de stock bajo/agotado y movimientos recientes
// (hoy y dentro de la ventana configurada, desglosados por tipo).
func (uc *QueryUseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar fichas de almacén: %w", err)
	}

	stats := &dto.StatsResponse{
		TotalProducts:        len(products),
		InventoryValueAtCost: decimal.Zero,
		InventoryValueAtSale: decimal.Zero,
		MovementCountByType:  make(map[string]int),
	}
	for _, p := range products {
		qty := decimal.NewFromInt(int64(p.Stock))
		stats.TotalStock += p.Stock
		stats.InventoryValueAtCost = stats.InventoryValueAtCost.Add(qty.Mul(p.PurchaseCost))
		stats.InventoryValueAtSale = stats.InventoryValueAtSale.Add(qty.Mul(p.SellPrice))
		if p.Stock == 0 {
			stats.OutOfStockCount++
		}
		if p.Stock <= p.StockMinimum {
			stats.LowStockCount++
		}
	}

	now := time.Now()
	since := now.AddDate(0, 0, -uc.settings.RecentMovementDays)
	recent, err := uc.movementRepo.List(ctx, repository.MovementFilter{From: &since})
	if err != nil {
		return nil, fmt.Errorf("listar movimientos recientes: %w", err)
	}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for _, m := range recent {
		stats.RecentMovementCount++
		stats.MovementCountByType[m.Type]++
		if !m.Timestamp.Before(startOfDay) {
			stats.MovementsToday++
		}
	}
	return stats, nil
}

func toProductResponse(p *entity.InventoryProduct) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Code:         p.Code,
		Category:     p.Category,
		Stock:        p.Stock,
		StockMinimum: p.StockMinimum,
		StockMaximum: p.StockMaximum,
		SellPrice:    p.SellPrice,
		PurchaseCost: p.PurchaseCost,
		Supplier:     p.Supplier,
		Location:     p.Location,
		Notes:        p.Notes,
		StockLevel:   string(dominv.Classify(p.Stock, p.StockMinimum)),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:                  m.ID,
		ProductID:           m.ProductID,
		ProductName:         m.ProductName,
		Type:                m.Type,
		Quantity:            m.Quantity,
		StockBefore:         m.StockBefore,
		StockAfter:          m.StockAfter,
		Reason:              m.Reason,
		Operator:            m.Operator,
		Supplier:            m.Supplier,
		Location:            m.Location,
		DestinationLocation: m.DestinationLocation,
		Notes:               m.Notes,
		Timestamp:           m.Timestamp,
	}
}
