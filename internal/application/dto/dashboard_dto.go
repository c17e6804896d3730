package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalValue      decimal.Decimal `json:"valorTotal"`
	TotalValueLabel string          `json:"valorTotalFormatado"`
	ProductCount    int             `json:"totalProdutos"`
	LowStockCount   int             `json:"produtosEstoqueBaixo"`
	UnreadLowAlerts int             `json:"alertasEstoqueBaixo"` // alertas "baixo" sin leer

	// Movimientos de los últimos 30 días
	InLast30Days  int `json:"entradas30d"`
	OutLast30Days int `json:"saidas30d"`

	Recent     []ProductResponse  `json:"produtosRecentes"`
	Critical   []CriticalStockDTO `json:"estoqueCritico"`
	Categories []CategoryShareDTO `json:"categorias"`
	TopSelling []TopProductDTO    `json:"maisVendidos"`

	UpdatedAt string `json:"atualizadoEm"` // dd/mm/aaaa hh:mm:ss
}

// CriticalStockDTO producto con stock bajo para el widget de alertas.
type CriticalStockDTO struct {
	ProductID string  `json:"produtoId"`
	Name      string  `json:"nome"`
	Code      string  `json:"codigo"`
	Quantity  int     `json:"quantidadeEmEstoque"`
	MinStock  int     `json:"estoqueMinimo"`
	Unit      string  `json:"unidade"`
	Ratio     float64 `json:"proporcao"` // quantidade / minimo
}

// CategoryShareDTO distribución de productos por categoría.
type CategoryShareDTO struct {
	CategoryID string  `json:"categoriaId"`
	Name       string  `json:"nome"`
	Count      int     `json:"quantidade"`
	Percentage float64 `json:"porcentagem"`
	Color      string  `json:"cor"`
}

// TopProductDTO producto por unidades de salida acumuladas.
type TopProductDTO struct {
	ProductID string `json:"produtoId"`
	Name      string `json:"nome"`
	Code      string `json:"codigo"`
	Quantity  int    `json:"quantidadeSaida"`
}
