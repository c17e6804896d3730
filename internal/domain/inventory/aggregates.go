package inventory

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// DefaultTopLimit cantidad de elementos en los rankings del dashboard.
const DefaultTopLimit = 5

// DefaultCategoryColor color usado cuando la categoría no define uno.
const DefaultCategoryColor = "#3B82F6"

// TotalInventoryValue suma precio × cantidad de todos los productos.
func TotalInventoryValue(products []entity.Product) decimal.Decimal {
	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
	}
	return total
}

// CountByCategory cuenta los productos de una categoría.
func CountByCategory(products []entity.Product, categoryID string) int {
	n := 0
	for _, p := range products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n
}

// ProductSales producto con el total de unidades salidas.
type ProductSales struct {
	Product  entity.Product
	Quantity int
}

// TopSellingProducts suma las salidas por producto, descarta productos inexistentes
// y devuelve los limit con más unidades (limit <= 0 usa DefaultTopLimit).
// Empates conservan el orden de la primera salida registrada.
func TopSellingProducts(movements []entity.Movement, products []entity.Product, limit int) []ProductSales {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	totals := make(map[string]int)
	var order []string
	for _, m := range movements {
		if m.Type != entity.MovementTypeOut {
			continue
		}
		if _, seen := totals[m.ProductID]; !seen {
			order = append(order, m.ProductID)
		}
		totals[m.ProductID] += m.Quantity
	}
	out := make([]ProductSales, 0, len(order))
	for _, id := range order {
		p, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, ProductSales{Product: p, Quantity: totals[id]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Quantity > out[j].Quantity })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RecentProducts devuelve los n productos registrados más recientemente.
func RecentProducts(products []entity.Product, n int) []entity.Product {
	out := append([]entity.Product(nil), products...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].RegisteredAt.After(out[j].RegisteredAt) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// CriticalLowStock devuelve hasta n productos con stock bajo, del más crítico
// (menor cantidad/mínimo) al menos crítico.
func CriticalLowStock(products []entity.Product, n int) []entity.Product {
	var out []entity.Product
	for _, p := range products {
		if IsLowStock(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return StockRatio(out[i]) < StockRatio(out[j]) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// StockRatio cantidad / mínimo. Con mínimo <= 0 se toma la cantidad cruda si es negativa, o 0.
func StockRatio(p entity.Product) float64 {
	if p.MinStock <= 0 {
		if p.Quantity < 0 {
			return float64(p.Quantity)
		}
		return 0
	}
	return float64(p.Quantity) / float64(p.MinStock)
}

// CategoryShare participación de una categoría en el total de productos.
type CategoryShare struct {
	Category   entity.Category
	Count      int
	Percentage float64
	Color      string
}

// CategoryDistribution cuenta productos por categoría, ordenado de mayor a menor.
func CategoryDistribution(products []entity.Product, categories []entity.Category) []CategoryShare {
	out := make([]CategoryShare, 0, len(categories))
	for _, c := range categories {
		count := CountByCategory(products, c.ID)
		var pct float64
		if len(products) > 0 {
			pct = float64(count) / float64(len(products)) * 100
		}
		color := c.Color
		if color == "" {
			color = DefaultCategoryColor
		}
		out = append(out, CategoryShare{Category: c, Count: count, Percentage: pct, Color: color})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// MovementTotals conteo de movimientos por tipo.
type MovementTotals struct {
	In  int
	Out int
}

// CountMovements cuenta entradas y salidas con fecha >= since (since cero cuenta todo).
func CountMovements(movements []entity.Movement, since time.Time) MovementTotals {
	var t MovementTotals
	for _, m := range movements {
		if !since.IsZero() && m.Date.Before(since) {
			continue
		}
		switch m.Type {
		case entity.MovementTypeIn:
			t.In++
		case entity.MovementTypeOut:
			t.Out++
		}
	}
	return t
}

// SortMovementsByDateDesc devuelve una copia ordenada de la más reciente a la más antigua.
func SortMovementsByDateDesc(movements []entity.Movement) []entity.Movement {
	out := append([]entity.Movement(nil), movements...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}
