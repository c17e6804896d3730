package dto

import (
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/pkg/format"
)

// DateLayout formato de validade en la API.
const DateLayout = "2006-01-02"

// FromProduct mapea un producto y calcula status, stock bajo y vencimiento respecto a now.
// El vencimiento usa la ventana de rule, la misma que genera las alertas.
func FromProduct(p entity.Product, now time.Time, rule inventory.AlertRule) ProductResponse {
	out := ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		Price:        p.Price,
		PriceLabel:   format.Currency(p.Price),
		Quantity:     p.Quantity,
		MinStock:     p.MinStock,
		Unit:         p.Unit,
		Code:         p.Code,
		RegisteredAt: p.RegisteredAt,
		SupplierID:   p.SupplierID,
		Location:     p.Location,
		ImageURL:     p.ImageURL,
		Status:       inventory.StockStatus(p),
		LowStock:     inventory.IsLowStock(p),
		ExpiringSoon: rule.ExpiringSoon(p, now),
	}
	if p.ExpiresAt != nil {
		s := p.ExpiresAt.Format(DateLayout)
		out.ExpiresAt = &s
	}
	return out
}

// FromProducts mapea una lista; nunca devuelve nil.
func FromProducts(ps []entity.Product, now time.Time, rule inventory.AlertRule) []ProductResponse {
	out := make([]ProductResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProduct(p, now, rule))
	}
	return out
}

// FromMovement mapea un movimiento; productName puede ser vacío.
func FromMovement(m entity.Movement, productName string) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: productName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Date:        m.Date,
		DateLabel:   format.DateTime(m.Date),
		Responsible: m.Responsible,
		Note:        m.Note,
	}
}

func FromCategory(c entity.Category, productCount int) CategoryResponse {
	return CategoryResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Color:        c.Color,
		ProductCount: productCount,
	}
}

func FromSupplier(s entity.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:      s.ID,
		Name:    s.Name,
		Contact: s.Contact,
		Email:   s.Email,
		Phone:   s.Phone,
		Address: s.Address,
	}
}

func FromAlert(a entity.Alert, productName string) AlertResponse {
	return AlertResponse{
		ID:          a.ID,
		ProductID:   a.ProductID,
		ProductName: productName,
		Type:        a.Type,
		Message:     a.Message,
		Date:        a.Date,
		Read:        a.Read,
	}
}

func FromFilter(f entity.Filter) FilterResponse {
	return FilterResponse{
		CategoryID: f.CategoryID,
		SupplierID: f.SupplierID,
		Term:       f.Term,
		SortBy:     f.SortBy,
		Direction:  f.Direction,
		Active:     !f.IsEmpty(),
	}
}

// ProductNames índice id -> nombre para resolver referencias en listados.
func ProductNames(ps []entity.Product) map[string]string {
	names := make(map[string]string, len(ps))
	for _, p := range ps {
		names[p.ID] = p.Name
	}
	return names
}
