package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryProduct es la ficha de almacén de un producto vendible.
// Name, Code y Categoría son espejo del Catálogo y se refrescan en cada
// reconciliación; Stock se deriva del libro de movimientos y nunca se edita
// directamente (solo vía movimientos).
type InventoryProduct struct {
	ID           string // == CatalogProduct.ID
	Name         string
	Code         string
	Category     string
	Stock        int
	StockMinimum int
	StockMaximum int
	SellPrice    decimal.Decimal
	PurchaseCost decimal.Decimal
	Supplier     string
	Location     string
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
