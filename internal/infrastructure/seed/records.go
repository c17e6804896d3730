package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// DateLayout formato de la fecha de vencimiento en el fixture.
const DateLayout = "2006-01-02"

// Document forma serializada del snapshot inicial (nombres de campo del fixture).
type Document struct {
	Categories []CategoryRecord `json:"categorias"`
	Suppliers  []SupplierRecord `json:"fornecedores"`
	Products   []ProductRecord  `json:"produtos"`
	Movements  []MovementRecord `json:"movimentacoes"`
	Alerts     []AlertRecord    `json:"alertas"`
}

type CategoryRecord struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	Description string `json:"descricao,omitempty"`
	Color       string `json:"cor,omitempty"`
}

type SupplierRecord struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Contact string `json:"contato"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"telefone,omitempty"`
	Address string `json:"endereco,omitempty"`
}

type ProductRecord struct {
	ID           string          `json:"id"`
	Name         string          `json:"nome"`
	Description  string          `json:"descricao,omitempty"`
	CategoryID   string          `json:"categoria"`
	Price        decimal.Decimal `json:"preco"`
	Quantity     int             `json:"quantidadeEmEstoque"`
	MinStock     int             `json:"estoqueMinimo"`
	Unit         string          `json:"unidade"`
	Code         string          `json:"codigo"`
	RegisteredAt time.Time       `json:"dataCadastro"`
	SupplierID   string          `json:"fornecedor"`
	Location     string          `json:"localArmazenamento,omitempty"`
	ExpiresAt    string          `json:"validade,omitempty"` // YYYY-MM-DD
	ImageURL     string          `json:"imagem,omitempty"`
}

type MovementRecord struct {
	ID          string    `json:"id"`
	ProductID   string    `json:"produtoId"`
	Type        string    `json:"tipo"`
	Quantity    int       `json:"quantidade"`
	Date        time.Time `json:"data"`
	Responsible string    `json:"responsavel"`
	Note        string    `json:"observacao,omitempty"`
}

type AlertRecord struct {
	ID        string    `json:"id"`
	ProductID string    `json:"produtoId"`
	Type      string    `json:"tipo"`
	Message   string    `json:"mensagem"`
	Date      time.Time `json:"data"`
	Read      bool      `json:"lido"`
}

// Snapshot convierte el documento al snapshot de dominio.
func (d Document) Snapshot() (repository.Snapshot, error) {
	snap := repository.Snapshot{
		Categories: make([]entity.Category, 0, len(d.Categories)),
		Suppliers:  make([]entity.Supplier, 0, len(d.Suppliers)),
		Products:   make([]entity.Product, 0, len(d.Products)),
		Movements:  make([]entity.Movement, 0, len(d.Movements)),
		Alerts:     make([]entity.Alert, 0, len(d.Alerts)),
	}
	for _, c := range d.Categories {
		snap.Categories = append(snap.Categories, entity.Category(c))
	}
	for _, s := range d.Suppliers {
		snap.Suppliers = append(snap.Suppliers, entity.Supplier(s))
	}
	for _, r := range d.Products {
		p, err := r.toEntity()
		if err != nil {
			return repository.Snapshot{}, err
		}
		snap.Products = append(snap.Products, p)
	}
	for _, m := range d.Movements {
		snap.Movements = append(snap.Movements, entity.Movement(m))
	}
	for _, a := range d.Alerts {
		snap.Alerts = append(snap.Alerts, entity.Alert(a))
	}
	return snap, nil
}

func (r ProductRecord) toEntity() (entity.Product, error) {
	p := entity.Product{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		CategoryID:   r.CategoryID,
		Price:        r.Price,
		Quantity:     r.Quantity,
		MinStock:     r.MinStock,
		Unit:         r.Unit,
		Code:         r.Code,
		RegisteredAt: r.RegisteredAt,
		SupplierID:   r.SupplierID,
		Location:     r.Location,
		ImageURL:     r.ImageURL,
	}
	if r.ExpiresAt != "" {
		exp, err := time.Parse(DateLayout, r.ExpiresAt)
		if err != nil {
			return entity.Product{}, fmt.Errorf("producto %s: validade %q: %w", r.ID, r.ExpiresAt, err)
		}
		p.ExpiresAt = &exp
	}
	return p, nil
}
