package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplyMovementRequest body para POST /api/inventory/movements.
// DestinationLocation solo aplica a type=transfer.
type ApplyMovementRequest struct {
	ProductID           string `json:"product_id"`
	Type                string `json:"type"`
	Quantity            int    `json:"quantity"`
	Reason              string `json:"reason,omitempty"`
	Operator            string `json:"operator,omitempty"`
	Supplier            string `json:"supplier,omitempty"`
	DestinationLocation string `json:"destination_location,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

// MovementResponse representación de una entrada del libro de movimientos.
type MovementResponse struct {
	ID                  string    `json:"id"`
	ProductID           string    `json:"product_id"`
	ProductName         string    `json:"product_name"`
	Type                string    `json:"type"`
	Quantity            int       `json:"quantity"`
	StockBefore         int       `json:"stock_before"`
	StockAfter          int       `json:"stock_after"`
	Reason              string    `json:"reason,omitempty"`
	Operator            string    `json:"operator,omitempty"`
	Supplier            string    `json:"supplier,omitempty"`
	Location            string    `json:"location,omitempty"`
	DestinationLocation string    `json:"destination_location,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
}

// ApplyMovementResponse resultado de aplicar un movimiento.
type ApplyMovementResponse struct {
	Movement MovementResponse `json:"movement"`
	NewStock int              `json:"new_stock"`
}

// ProductResponse ficha de almacén expuesta a otros módulos.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Code         string          `json:"code,omitempty"`
	Category     string          `json:"category,omitempty"`
	Stock        int             `json:"stock"`
	StockMinimum int             `json:"stock_minimum"`
	StockMaximum int             `json:"stock_maximum"`
	SellPrice    decimal.Decimal `json:"sell_price"`
	PurchaseCost decimal.Decimal `json:"purchase_cost"`
	Supplier     string          `json:"supplier,omitempty"`
	Location     string          `json:"location,omitempty"`
	Notes        string          `json:"notes,omitempty"`
	StockLevel   string          `json:"stock_level"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// UpdateProductRequest body para PUT /api/inventory/products/:id.
// Solo campos propios del almacén: los espejados del catálogo (name, code,
// category) y el stock no son editables por esta vía.
type UpdateProductRequest struct {
	StockMinimum *int             `json:"stock_minimum,omitempty"`
	StockMaximum *int             `json:"stock_maximum,omitempty"`
	SellPrice    *decimal.Decimal `json:"sell_price,omitempty"`
	PurchaseCost *decimal.Decimal `json:"purchase_cost,omitempty"`
	Supplier     *string          `json:"supplier,omitempty"`
	Location     *string          `json:"location,omitempty"`
	Notes        *string          `json:"notes,omitempty"`
}

// ListMovementsRequest query params para GET /api/inventory/movements.
type ListMovementsRequest struct {
	ProductID string `query:"product_id"`
	Type      string `query:"type"`
	DateFrom  string `query:"date_from"` // RFC 3339
	DateTo    string `query:"date_to"`
	Limit     int    `query:"limit"`
	Offset    int    `query:"offset"`
}

// AlertResponse alerta de stock viva.
type AlertResponse struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	Level        string    `json:"level"`
	Stock        int       `json:"stock"`
	StockMinimum int       `json:"stock_minimum"`
	Message      string    `json:"message"`
	Timestamp    time.Time `json:"timestamp"`
	Read         bool      `json:"read"`
}

// StatsResponse agregados del inventario para el dashboard.
type StatsResponse struct {
	TotalProducts        int             `json:"total_products"`
	TotalStock           int             `json:"total_stock"`
	InventoryValueAtCost decimal.Decimal `json:"inventory_value_at_cost"`
	InventoryValueAtSale decimal.Decimal `json:"inventory_value_at_sale"`
	LowStockCount        int             `json:"low_stock_count"`
	OutOfStockCount      int             `json:"out_of_stock_count"`
	MovementsToday       int             `json:"movements_today"`
	RecentMovementCount  int             `json:"recent_movement_count"`
	MovementCountByType  map[string]int  `json:"movement_count_by_type"`
}

// SaleLineItem línea de venta que llega desde el punto de venta.
type SaleLineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Operator  string `json:"operator,omitempty"`
}

// SaleSyncRequest body para POST /api/sales/stock-sync.
type SaleSyncRequest struct {
	Items []SaleLineItem `json:"items"`
}

// SaleSyncResult resultado individual de descontar stock por una línea de
// venta. Error viaja como texto porque el caller solo lo muestra como aviso.
type SaleSyncResult struct {
	ProductID string `json:"product_id"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}
