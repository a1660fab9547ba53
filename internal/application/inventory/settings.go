package inventory

// Settings parámetros operativos del almacén (valores por defecto al crear
// fichas y ventana de estadísticas). Se cargan desde pkg/config.
type Settings struct {
	DefaultStockMinimum int
	DefaultStockMaximum int
	DefaultLocation     string
	RecentMovementDays  int
	AutoAlerts          bool
}

// DefaultSettings valores usados cuando no hay configuración explícita.
func DefaultSettings() Settings {
	return Settings{
		DefaultStockMinimum: 5,
		DefaultStockMaximum: 100,
		DefaultLocation:     "Almacén Principal",
		RecentMovementDays:  30,
		AutoAlerts:          true,
	}
}
