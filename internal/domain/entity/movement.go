package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn  = "entrada"
	MovementTypeOut = "saida"
)

// Movement representa un movimiento de stock (entrada o salida) de un producto.
// Solo se agrega; se elimina únicamente en cascada al eliminar el producto.
type Movement struct {
	ID          string
	ProductID   string
	Type        string
	Quantity    int // siempre positivo; el signo lo da Type
	Date        time.Time
	Responsible string
	Note        string // opcional
}

// Delta devuelve el efecto del movimiento sobre el stock del producto.
func (m Movement) Delta() int {
	if m.Type == MovementTypeIn {
		return m.Quantity
	}
	return -m.Quantity
}
