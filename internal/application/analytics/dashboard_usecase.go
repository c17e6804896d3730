// Package analytics contiene el caso de uso del dashboard del inventario.
package analytics

import (
	"time"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/format"
)

// movementWindow período de los contadores de entradas y salidas.
const movementWindow = 30 * 24 * time.Hour

// DashboardUseCase genera el resumen del inventario.
//
// Fuente de datos: el store (solo lectura). Todas las cifras salen de una única
// lectura de cada colección, así el resumen es consistente consigo mismo.
type DashboardUseCase struct {
	store repository.InventoryReader
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(store repository.InventoryReader) *DashboardUseCase {
	return &DashboardUseCase{store: store, now: time.Now}
}

// WithClock reemplaza el reloj (ventana de 30 días y etiqueta de actualización).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	now := uc.now()
	products := uc.store.Products()
	movements := uc.store.Movements()

	// ── Totales ───────────────────────────────────────────────────────────────
	total := inventory.TotalInventoryValue(products)
	lowCount := 0
	for _, p := range products {
		if inventory.IsLowStock(p) {
			lowCount++
		}
	}
	unread := 0
	for _, a := range uc.store.Alerts() {
		if !a.Read && a.Type == entity.AlertTypeLowStock {
			unread++
		}
	}
	window := inventory.CountMovements(movements, now.Add(-movementWindow))

	// ── Widgets ───────────────────────────────────────────────────────────────
	critical := inventory.CriticalLowStock(products, inventory.DefaultTopLimit)
	criticalDTOs := make([]dto.CriticalStockDTO, 0, len(critical))
	for _, p := range critical {
		criticalDTOs = append(criticalDTOs, dto.CriticalStockDTO{
			ProductID: p.ID,
			Name:      p.Name,
			Code:      p.Code,
			Quantity:  p.Quantity,
			MinStock:  p.MinStock,
			Unit:      p.Unit,
			Ratio:     inventory.StockRatio(p),
		})
	}

	shares := inventory.CategoryDistribution(products, uc.store.Categories())
	shareDTOs := make([]dto.CategoryShareDTO, 0, len(shares))
	for _, s := range shares {
		shareDTOs = append(shareDTOs, dto.CategoryShareDTO{
			CategoryID: s.Category.ID,
			Name:       s.Category.Name,
			Count:      s.Count,
			Percentage: s.Percentage,
			Color:      s.Color,
		})
	}

	top := inventory.TopSellingProducts(movements, products, inventory.DefaultTopLimit)
	topDTOs := make([]dto.TopProductDTO, 0, len(top))
	for _, t := range top {
		topDTOs = append(topDTOs, dto.TopProductDTO{
			ProductID: t.Product.ID,
			Name:      t.Product.Name,
			Code:      t.Product.Code,
			Quantity:  t.Quantity,
		})
	}

	// ── Construir DTO ─────────────────────────────────────────────────────────
	return &dto.DashboardSummaryDTO{
		TotalValue:      total.Round(2),
		TotalValueLabel: format.Currency(total),
		ProductCount:    len(products),
		LowStockCount:   lowCount,
		UnreadLowAlerts: unread,
		InLast30Days:    window.In,
		OutLast30Days:   window.Out,
		Recent:          dto.FromProducts(inventory.RecentProducts(products, inventory.DefaultTopLimit), now, uc.store.AlertRule()),
		Critical:        criticalDTOs,
		Categories:      shareDTOs,
		TopSelling:      topDTOs,
		UpdatedAt:       format.DateTime(now),
	}
}
