package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/soundwave-studio/almacen/internal/application/dto"
	"github.com/soundwave-studio/almacen/internal/application/inventory"
	"github.com/soundwave-studio/almacen/internal/domain/entity"
)

// AlertHandler maneja las peticiones HTTP de alertas de stock.
type AlertHandler struct {
	alerts *inventory.StockAlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(alerts *inventory.StockAlertUseCase) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// List GET /api/inventory/alerts — con ?unread=true devuelve solo las no
// leídas.
func (h *AlertHandler) List(c *fiber.Ctx) error {
	var (
		alerts []*entity.StockAlert
		err    error
	)
	if c.QueryBool("unread") {
		alerts, err = h.alerts.ListUnread(c.Context())
	} else {
		alerts, err = h.alerts.List(c.Context())
	}
	if err != nil {
		return mapDomainError(c, err)
	}
	out := make([]*dto.AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, alertToDTO(a))
	}
	return c.JSON(fiber.Map{"total": len(out), "alerts": out})
}

// MarkRead POST /api/inventory/alerts/:id/read.
func (h *AlertHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.alerts.MarkRead(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "alerta marcada como leída"})
}

func alertToDTO(a *entity.StockAlert) *dto.AlertResponse {
	return &dto.AlertResponse{
		ID:           a.ID,
		ProductID:    a.ProductID,
		ProductName:  a.ProductName,
		Level:        a.Level,
		Stock:        a.Stock,
		StockMinimum: a.StockMinimum,
		Message:      a.Message,
		Timestamp:    a.Timestamp,
		Read:         a.Read,
	}
}
