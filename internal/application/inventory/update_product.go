package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/soundwave-studio/almacen/internal/application/dto"
	"github.com/soundwave-studio/almacen/internal/domain"
	"github.com/soundwave-studio/almacen/internal/domain/repository"
)

// UpdateProductUseCase edita los campos propios del almacén de una ficha
// (umbrales, precios, proveedor, ubicación, notas). Los campos espejo del
// catálogo y el stock no se tocan por esta vía: el stock solo cambia vía
// movimientos y el espejo solo vía reconciliación.
type UpdateProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewUpdateProductUseCase construye el caso de uso.
func NewUpdateProductUseCase(productRepo repository.ProductRepository) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo}
}

// Update aplica los campos presentes del request sobre la ficha.
func (uc *UpdateProductUseCase) Update(ctx context.Context, productID string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("buscar ficha %s: %w", productID, err)
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	if in.StockMinimum != nil {
		if *in.StockMinimum < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.StockMinimum = *in.StockMinimum
	}
	if in.StockMaximum != nil {
		if *in.StockMaximum < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.StockMaximum = *in.StockMaximum
	}
	if in.SellPrice != nil {
		if in.SellPrice.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.SellPrice = *in.SellPrice
	}
	if in.PurchaseCost != nil {
		if in.PurchaseCost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		product.PurchaseCost = *in.PurchaseCost
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Location != nil {
		product.Location = *in.Location
	}
	if in.Notes != nil {
		product.Notes = *in.Notes
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("actualizar ficha %s: %w", productID, err)
	}
	return toProductResponse(product), nil
}
