package dto

import "time"

// AlertResponse alerta con el nombre del producto resuelto.
type AlertResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"produtoId"`
	ProductName string    `json:"produtoNome,omitempty"`
	Type        string    `json:"tipo"`
	Message     string    `json:"mensagem"`
	Date        time.Time `json:"data"`
	Read        bool      `json:"lido"`
}

// AlertListResponse listado de alertas (más recientes primero).
type AlertListResponse struct {
	Items  []AlertResponse `json:"items"`
	Unread int             `json:"naoLidos"`
}
