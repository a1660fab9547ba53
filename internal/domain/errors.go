package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError rechazo tipado de una salida o merma que dejaría el
// stock en negativo. Lleva disponible y solicitado para que el caller (ej. la
// sincronización de ventas) lo reporte por ítem.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %d, solicitado %d", e.Available, e.Requested)
}

// Is permite errors.Is(err, ErrInsufficientStock) sobre el error tipado.
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
