package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogProduct es la identidad de producto tal como la publica el módulo
// Catálogo. Este motor solo la lee: el ciclo de vida (alta, baja, activo)
// pertenece por completo al Catálogo.
type CatalogProduct struct {
	ID        string
	Code      string
	Name      string
	Category  string
	SellPrice decimal.Decimal // opcional; si > 0 se usa como precio inicial al crear la ficha de almacén
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
