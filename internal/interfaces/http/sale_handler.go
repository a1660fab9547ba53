package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soundwave-studio/almacen/internal/application/dto"
	"github.com/soundwave-studio/almacen/internal/application/inventory"
)

// SaleHandler frontera con el punto de venta: descuento de stock por venta
// ya persistida. Siempre responde 200 con resultados por línea; los fallos
// individuales no abortan la petición ni la venta origen.
type SaleHandler struct {
	saleSync *inventory.SaleSyncUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(saleSync *inventory.SaleSyncUseCase) *SaleHandler {
	return &SaleHandler{saleSync: saleSync}
}

// SyncStock POST /api/sales/stock-sync.
func (h *SaleHandler) SyncStock(c *fiber.Ctx) error {
	var in dto.SaleSyncRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	results := h.saleSync.SyncStockFromSale(c.Context(), in.Items)
	return c.JSON(fiber.Map{"results": results})
}
