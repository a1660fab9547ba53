package inventory

// StockLevel clasificación derivada del stock frente a su mínimo configurado
// (servicio de dominio).
type StockLevel string

const (
	LevelCritical StockLevel = "critical" // agotado
	LevelLow      StockLevel = "low"      // por debajo o igual al mínimo
	LevelNormal   StockLevel = "normal"
)

// Classify devuelve el nivel de stock: critical si stock == 0,
// low si 0 < stock <= stockMinimum, normal en otro caso.
func Classify(stock, stockMinimum int) StockLevel {
	if stock == 0 {
		return LevelCritical
	}
	if stock <= stockMinimum {
		return LevelLow
	}
	return LevelNormal
}
