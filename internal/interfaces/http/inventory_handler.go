package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soundwave-studio/almacen/internal/application/dto"
	"github.com/soundwave-studio/almacen/internal/application/inventory"
)

// InventoryHandler maneja las peticiones HTTP del almacén: fichas,
// movimientos y estadísticas.
type InventoryHandler struct {
	queries       *inventory.QueryUseCase
	apply         *inventory.ApplyMovementUseCase
	updateProduct *inventory.UpdateProductUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	queries *inventory.QueryUseCase,
	apply *inventory.ApplyMovementUseCase,
	updateProduct *inventory.UpdateProductUseCase,
) *InventoryHandler {
	return &InventoryHandler{queries: queries, apply: apply, updateProduct: updateProduct}
}

// ListProducts GET /api/inventory/products — reconcilia contra el catálogo y
// devuelve las fichas resultantes.
func (h *InventoryHandler) ListProducts(c *fiber.Ctx) error {
	products, err := h.queries.GetInventoryProducts(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(products), "products": products})
}

// UpdateProduct PUT /api/inventory/products/:id — edita los campos propios
// del almacén (umbrales, precios, proveedor, ubicación, notas).
func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.updateProduct.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(product)
}

// ApplyMovement POST /api/inventory/movements — aplica un movimiento de
// stock y devuelve la entrada del libro con el stock resultante.
func (h *InventoryHandler) ApplyMovement(c *fiber.Ctx) error {
	var in dto.ApplyMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.apply.Apply(c.Context(), inventory.MovementInput{
		ProductID:           in.ProductID,
		Type:                in.Type,
		Quantity:            in.Quantity,
		Reason:              in.Reason,
		Operator:            in.Operator,
		Supplier:            in.Supplier,
		DestinationLocation: in.DestinationLocation,
		Notes:               in.Notes,
	})
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ApplyMovementResponse{
		Movement: *movementToDTO(result),
		NewStock: result.NewStock,
	})
}

// ListMovements GET /api/inventory/movements — lista del libro con filtros
// por producto, tipo y rango de fechas.
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	var req dto.ListMovementsRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	movements, err := h.queries.GetMovements(c.Context(), req)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(movements), "movements": movements})
}

// LowStock GET /api/inventory/products/low-stock.
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.queries.GetLowStockProducts(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(products), "products": products})
}

// OutOfStock GET /api/inventory/products/out-of-stock.
func (h *InventoryHandler) OutOfStock(c *fiber.Ctx) error {
	products, err := h.queries.GetOutOfStockProducts(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(products), "products": products})
}

// Stats GET /api/inventory/stats.
func (h *InventoryHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.queries.GetStats(c.Context())
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(stats)
}

func movementToDTO(result *inventory.MovementResult) *dto.MovementResponse {
	m := result.Movement
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
