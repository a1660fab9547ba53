package entity

import "time"

// Tipos de movimiento de almacén (value object conceptual).
const (
	MovementTypeInbound    = "inbound"    // entrada de mercancía
	MovementTypeOutbound   = "outbound"   // salida (venta, retiro)
	MovementTypeTransfer   = "transfer"   // cambio de ubicación, no altera stock
	MovementTypeAdjustment = "adjustment" // fija el stock en un valor absoluto (conteo físico)
	MovementTypeWriteoff   = "writeoff"   // merma, mercancía dañada
)

// ValidMovementType indica si el tipo pertenece al conjunto soportado.
func ValidMovementType(t string) bool {
	switch t {
	case MovementTypeInbound, MovementTypeOutbound, MovementTypeTransfer,
		MovementTypeAdjustment, MovementTypeWriteoff:
		return true
	}
	return false
}

// Movement es una entrada inmutable del libro de movimientos: una vez creada
// no se edita ni se borra. StockBefore/StockAfter son snapshots al momento de
// aplicar; ProductName se desnormaliza para que el historial sobreviva a la
// eliminación de la ficha.
type Movement struct {
	ID                  string
	ProductID           string
	ProductName         string
	Type                string
	Quantity            int
	StockBefore         int
	StockAfter          int
	Reason              string
	Operator            string
	Supplier            string
	Location            string // ubicación del producto al momento del movimiento
	DestinationLocation string // solo transfer
	Notes               string
	Timestamp           time.Time
}
