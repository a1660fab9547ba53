package inventory

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/soundwave-studio/almacen/internal/application/dto"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
)

// SaleSyncUseCase descuenta stock por cada línea de una venta ya persistida
// por el punto de venta. Es una sincronización de mejor esfuerzo: cada línea
// se aplica de forma independiente, los fallos se recogen por ítem y nunca se
// revierte la venta origen. Los productos de venta rápida que no existen en
// el almacén fallan con producto-no-encontrado y quedan fuera del control de
// stock, que es el resultado esperado.
type SaleSyncUseCase struct {
	apply *ApplyMovementUseCase
	log   zerolog.Logger
}

// NewSaleSyncUseCase construye el caso de uso.
func NewSaleSyncUseCase(apply *ApplyMovementUseCase, log zerolog.Logger) *SaleSyncUseCase {
	return &SaleSyncUseCase{apply: apply, log: log}
}

// SyncStockFromSale aplica una salida por línea vendida y devuelve el
// resultado individual de cada una.
func (uc *SaleSyncUseCase) SyncStockFromSale(ctx context.Context, items []dto.SaleLineItem) []dto.SaleSyncResult {
	results := make([]dto.SaleSyncResult, 0, len(items))
	for _, item := range items {
		_, err := uc.apply.Apply(ctx, MovementInput{
			ProductID: item.ProductID,
			Type:      entity.MovementTypeOutbound,
			Quantity:  item.Quantity,
			Reason:    "venta",
			Operator:  operatorOrSystem(item.Operator),
			Notes:     "descuento automático por venta",
		})
		result := dto.SaleSyncResult{ProductID: item.ProductID, Success: err == nil}
		if err != nil {
			result.Error = err.Error()
			uc.log.Warn().Err(err).Str("product_id", item.ProductID).
				Msg("línea de venta sin descuento de stock")
		}
		results = append(results, result)
	}
	return results
}
