package dto

// FilterRequest body de PUT /api/filter. Reemplaza el filtro activo completo.
type FilterRequest struct {
	CategoryID string `json:"categoria"`
	SupplierID string `json:"fornecedor"`
	Term       string `json:"termo" validate:"max=100"`
	SortBy     string `json:"ordenacao" validate:"omitempty,oneof=nome estoque preco"`
	Direction  string `json:"direcao" validate:"omitempty,oneof=asc desc"`
}

// FilterResponse filtro activo.
type FilterResponse struct {
	CategoryID string `json:"categoria,omitempty"`
	SupplierID string `json:"fornecedor,omitempty"`
	Term       string `json:"termo,omitempty"`
	SortBy     string `json:"ordenacao,omitempty"`
	Direction  string `json:"direcao,omitempty"`
	Active     bool   `json:"ativo"`
}
