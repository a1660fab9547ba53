package entity

import "time"

// StockAlert es la alerta viva de stock de un producto. A lo sumo existe una
// por producto: cada recálculo reemplaza la anterior (o la elimina si el
// nivel vuelve a normal). Read es la única mutación posterior a la creación.
type StockAlert struct {
	ID           string
	ProductID    string
	ProductName  string
	Level        string // critical | low (normal no genera alerta)
	Stock        int
	StockMinimum int
	Message      string
	Timestamp    time.Time
	Read         bool
}
