package entity

import "time"

// Tipos de alerta.
const (
	AlertTypeLowStock   = "baixo"
	AlertTypeExpiration = "vencimento"
)

// Alert es una notificación persistente asociada a un producto y a una condición.
// Read solo pasa de false a true.
type Alert struct {
	ID        string
	ProductID string
	Type      string
	Message   string
	Date      time.Time
	Read      bool
}
