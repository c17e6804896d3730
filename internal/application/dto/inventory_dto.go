package dto

import "github.com/shopspring/decimal"

// ReplenishmentSuggestionDTO sugerencia de reposición para un producto con stock bajo.
type ReplenishmentSuggestionDTO struct {
	ProductID          string          `json:"produtoId"`
	Code               string          `json:"codigo"`
	ProductName        string          `json:"nome"`
	SupplierID         string          `json:"fornecedor"`
	CurrentStock       int             `json:"quantidadeEmEstoque"`
	MinStock           int             `json:"estoqueMinimo"`
	IdealStock         int             `json:"estoqueIdeal"`       // ceil(minimo * 1.5)
	SuggestedOrderQty  int             `json:"quantidadeSugerida"` // max(ideal - atual, 0)
	UnitPrice          decimal.Decimal `json:"preco"`
	EstimatedOrderCost decimal.Decimal `json:"custoEstimado"` // sugerida * preco
	Priority           int             `json:"prioridade"`    // 1 = más urgente
}

// ReplenishmentListResponse lista de reposición con el costo total.
type ReplenishmentListResponse struct {
	Items      []ReplenishmentSuggestionDTO `json:"items"`
	TotalCost  decimal.Decimal              `json:"custoTotal"`
	TotalLabel string                       `json:"custoTotalFormatado"`
}
