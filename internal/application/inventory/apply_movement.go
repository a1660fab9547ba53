package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/soundwave-studio/almacen/internal/domain"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

// ApplyMovementUseCase valida y aplica movimientos de stock: recalcula el
// stock según el tipo, persiste la ficha, anexa la entrada inmutable al libro
// y dispara el recálculo de alertas. Las tres escrituras son secuenciales, no
// una transacción: un corte entre fases deja stock actualizado sin entrada en
// el libro, ventana de inconsistencia tolerada y documentada.
type ApplyMovementUseCase struct {
	productRepo  repository.ProductRepository
	movementRepo repository.MovementRepository
	alerts       *StockAlertUseCase
	log          zerolog.Logger
}

// NewApplyMovementUseCase construye el caso de uso.
func NewApplyMovementUseCase(
	productRepo repository.ProductRepository,
	movementRepo repository.MovementRepository,
	alerts *StockAlertUseCase,
	log zerolog.Logger,
) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		alerts:       alerts,
		log:          log,
	}
}

// MovementInput entrada para aplicar un movimiento.
// Para adjustment Quantity es el stock absoluto resultante (conteo físico);
// para el resto es el delta, siempre > 0 salvo adjustment que admite 0.
type MovementInput struct {
	ProductID           string
	Type                string
	Quantity            int
	Reason              string
	Operator            string
	Supplier            string
	DestinationLocation string
	Notes               string
}

// MovementResult movimiento aplicado y stock resultante.
type MovementResult struct {
	Movement *entity.Movement
	NewStock int
}

// Apply aplica un movimiento sobre un producto existente.
// Rechazos tipados: ErrProductNotFound si el ID no resuelve a una ficha (el
// motor nunca crea stock en silencio), ErrInvalidInput si el tipo o la
// cantidad no son válidos, InsufficientStockError si una salida o merma
// dejaría el stock en negativo (sin aplicación parcial ni clamping).
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, input MovementInput) (*MovementResult, error) {
	if !entity.ValidMovementType(input.Type) {
		return nil, domain.ErrInvalidInput
	}
	// adjustment fija el stock y por tanto admite 0; el resto exige cantidad positiva.
	if input.Quantity < 0 || (input.Quantity == 0 && input.Type != entity.MovementTypeAdjustment) {
		return nil, domain.ErrInvalidInput
	}
	if input.Type == entity.MovementTypeTransfer && input.DestinationLocation == "" {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("buscar ficha %s: %w", input.ProductID, err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	stockBefore := product.Stock
	newStock, err := nextStock(stockBefore, input.Type, input.Quantity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	location := product.Location

	// Fase 1: persistir la ficha (stock, ubicación, updatedAt).
	product.Stock = newStock
	if input.Type == entity.MovementTypeTransfer {
		product.Location = input.DestinationLocation
	}
	product.UpdatedAt = now
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("actualizar ficha %s: %w", product.ID, err)
	}

	// Fase 2: anexar la entrada inmutable al libro.
	movement := &entity.Movement{
		ID:                  uuid.New().String(),
		ProductID:           product.ID,
		ProductName:         product.Name,
		Type:                input.Type,
		Quantity:            input.Quantity,
		StockBefore:         stockBefore,
		StockAfter:          newStock,
		Reason:              input.Reason,
		Operator:            operatorOrSystem(input.Operator),
		Supplier:            input.Supplier,
		Location:            location,
		DestinationLocation: input.DestinationLocation,
		Notes:               input.Notes,
		Timestamp:           now,
	}
	if err := uc.movementRepo.Create(ctx, movement); err != nil {
		// El stock ya quedó persistido sin entrada en el libro; se reporta, no
		// se revierte.
		uc.log.Error().Err(err).Str("product_id", product.ID).
			Msg("ficha actualizada pero falló el registro del movimiento")
		return nil, fmt.Errorf("registrar movimiento: %w", err)
	}

	// Fase 3: recálculo de la alerta del producto afectado.
	if err := uc.alerts.Recompute(ctx, product); err != nil {
		uc.log.Warn().Err(err).Str("product_id", product.ID).
			Msg("movimiento aplicado pero falló el recálculo de alertas")
	}

	return &MovementResult{Movement: movement, NewStock: newStock}, nil
}

// nextStock aplica la regla de transición por tipo de movimiento.
func nextStock(stock int, movementType string, quantity int) (int, error) {
	switch movementType {
	case entity.MovementTypeInbound:
		return stock + quantity, nil
	case entity.MovementTypeOutbound, entity.MovementTypeWriteoff:
		if quantity > stock {
			return 0, &domain.InsufficientStockError{Available: stock, Requested: quantity}
		}
		return stock - quantity, nil
	case entity.MovementTypeAdjustment:
		// Valor absoluto: fija un nuevo punto de partida para la suma acumulada.
		return quantity, nil
	case entity.MovementTypeTransfer:
		// Solo cambia la ubicación, el stock total no se mueve.
		return stock, nil
	}
	return 0, domain.ErrInvalidInput
}

func operatorOrSystem(operator string) string {
	if operator == "" {
		return "system"
	}
	return operator
}
