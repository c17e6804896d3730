package dto

import "time"

// RegisterMovementRequest body de POST /api/movements.
// Responsible vacío toma el operador del token, si lo hay.
type RegisterMovementRequest struct {
	ProductID   string `json:"produtoId" validate:"notblank"`
	Type        string `json:"tipo" validate:"required,oneof=entrada saida"`
	Quantity    int    `json:"quantidade" validate:"gt=0"`
	Responsible string `json:"responsavel" validate:"notblank,max=120"`
	Note        string `json:"observacao"`
}

// MovementResponse movimiento con el nombre del producto resuelto.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"produtoId"`
	ProductName string    `json:"produtoNome,omitempty"`
	Type        string    `json:"tipo"`
	Quantity    int       `json:"quantidade"`
	Date        time.Time `json:"data"`
	DateLabel   string    `json:"dataFormatada"`
	Responsible string    `json:"responsavel"`
	Note        string    `json:"observacao,omitempty"`
}

// MovementListResponse listado completo, más recientes primero.
type MovementListResponse struct {
	Items    []MovementResponse `json:"items"`
	In       int                `json:"entradas"`
	Out      int                `json:"saidas"`
	LastDate *time.Time         `json:"ultimaMovimentacao"`
}
