package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body de POST /api/products.
type CreateProductRequest struct {
	Name        string          `json:"nome" validate:"notblank,max=200"`
	Description string          `json:"descricao"`
	CategoryID  string          `json:"categoria" validate:"notblank"`
	Price       decimal.Decimal `json:"preco" validate:"gte=0"`
	Quantity    int             `json:"quantidadeEmEstoque" validate:"gte=0"`
	MinStock    int             `json:"estoqueMinimo" validate:"gte=0"`
	Unit        string          `json:"unidade" validate:"notblank"`
	Code        string          `json:"codigo" validate:"notblank"`
	SupplierID  string          `json:"fornecedor" validate:"notblank"`
	Location    string          `json:"localArmazenamento"`
	ExpiresAt   string          `json:"validade" validate:"omitempty,datetime=2006-01-02"`
	ImageURL    string          `json:"imagem" validate:"omitempty,url"`
}

// UpdateProductRequest body de PUT /api/products/:id. Solo se aplican los campos enviados.
type UpdateProductRequest struct {
	Name        *string          `json:"nome" validate:"omitempty,notblank,max=200"`
	Description *string          `json:"descricao"`
	CategoryID  *string          `json:"categoria" validate:"omitempty,notblank"`
	Price       *decimal.Decimal `json:"preco" validate:"omitempty,gte=0"`
	Quantity    *int             `json:"quantidadeEmEstoque" validate:"omitempty,gte=0"`
	MinStock    *int             `json:"estoqueMinimo" validate:"omitempty,gte=0"`
	Unit        *string          `json:"unidade" validate:"omitempty,notblank"`
	Code        *string          `json:"codigo" validate:"omitempty,notblank"`
	SupplierID  *string          `json:"fornecedor" validate:"omitempty,notblank"`
	Location    *string          `json:"localArmazenamento"`
	ExpiresAt   *string          `json:"validade" validate:"omitempty,datetime=2006-01-02"`
	ImageURL    *string          `json:"imagem" validate:"omitempty,url"`
}

// ProductResponse producto con los indicadores derivados.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"nome"`
	Description  string          `json:"descricao,omitempty"`
	CategoryID   string          `json:"categoria"`
	Price        decimal.Decimal `json:"preco"`
	PriceLabel   string          `json:"precoFormatado"`
	Quantity     int             `json:"quantidadeEmEstoque"`
	MinStock     int             `json:"estoqueMinimo"`
	Unit         string          `json:"unidade"`
	Code         string          `json:"codigo"`
	RegisteredAt time.Time       `json:"dataCadastro"`
	SupplierID   string          `json:"fornecedor"`
	Location     string          `json:"localArmazenamento,omitempty"`
	ExpiresAt    *string         `json:"validade,omitempty"` // YYYY-MM-DD
	ImageURL     string          `json:"imagem,omitempty"`
	Status       string          `json:"status"` // esgotado | baixo | normal
	LowStock     bool            `json:"estoqueBaixo"`
	ExpiringSoon bool            `json:"vencimentoProximo"`
}

// ProductListResponse listado con el filtro activo aplicado.
type ProductListResponse struct {
	Items  []ProductResponse `json:"items"`
	Total  int               `json:"total"`      // productos tras filtrar
	Of     int               `json:"totalGeral"` // productos en el inventario
	Filter FilterResponse    `json:"filtro"`
}

// ProductDetailResponse detalle de un producto con sus referencias resueltas.
// Category y Supplier son nil si la referencia no existe.
type ProductDetailResponse struct {
	Product    ProductResponse    `json:"produto"`
	Category   *CategoryResponse  `json:"categoria"`
	Supplier   *SupplierResponse  `json:"fornecedor"`
	StockValue decimal.Decimal    `json:"valorEmEstoque"`
	StockLabel string             `json:"valorEmEstoqueFormatado"`
	Movements  []MovementResponse `json:"movimentacoes"` // más recientes primero
}
