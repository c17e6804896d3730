package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// InventoryReportGenerator puerto del generador de documentos (PDF).
type InventoryReportGenerator interface {
	GenerateInventoryReport(ctx context.Context, report InventoryReport) ([]byte, error)
}

// InventoryReport datos ya calculados que el generador solo presenta.
type InventoryReport struct {
	Title         string
	GeneratedAt   time.Time
	Lines         []InventoryReportLine
	TotalValue    decimal.Decimal
	LowStockCount int
	Categories    []inventory.CategoryShare
}

// InventoryReportLine una fila por producto.
type InventoryReportLine struct {
	Code     string
	Name     string
	Category string
	Quantity int
	MinStock int
	Unit     string
	Price    decimal.Decimal
	Value    decimal.Decimal
	Status   string
}

// ReportUseCase arma el reporte de inventario (productos por nombre) y delega el render.
type ReportUseCase struct {
	store     repository.InventoryReader
	generator InventoryReportGenerator
	now       func() time.Time
	title     string
}

// NewReportUseCase construye el caso de uso. title encabeza el documento (nombre de la app).
func NewReportUseCase(store repository.InventoryReader, generator InventoryReportGenerator, title string) *ReportUseCase {
	return &ReportUseCase{store: store, generator: generator, now: time.Now, title: title}
}

// WithClock reemplaza el reloj de la fecha de emisión.
func (uc *ReportUseCase) WithClock(now func() time.Time) *ReportUseCase {
	uc.now = now
	return uc
}

// Build calcula el reporte sin renderizarlo.
func (uc *ReportUseCase) Build() InventoryReport {
	products := inventory.FilterProducts(uc.store.Products(),
		entity.Filter{SortBy: entity.SortByName, Direction: entity.SortAsc})
	categories := uc.store.Categories()
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	report := InventoryReport{
		Title:       uc.title,
		GeneratedAt: uc.now(),
		Lines:       make([]InventoryReportLine, 0, len(products)),
		TotalValue:  inventory.TotalInventoryValue(products),
		Categories:  inventory.CategoryDistribution(products, categories),
	}
	for _, p := range products {
		if inventory.IsLowStock(p) {
			report.LowStockCount++
		}
		report.Lines = append(report.Lines, InventoryReportLine{
			Code:     p.Code,
			Name:     p.Name,
			Category: names[p.CategoryID],
			Quantity: p.Quantity,
			MinStock: p.MinStock,
			Unit:     p.Unit,
			Price:    p.Price,
			Value:    p.Price.Mul(decimalFromInt(p.Quantity)),
			Status:   inventory.StockStatus(p),
		})
	}
	return report
}

// InventoryPDF genera el documento y un nombre de archivo con la fecha.
func (uc *ReportUseCase) InventoryPDF(ctx context.Context) ([]byte, string, error) {
	report := uc.Build()
	doc, err := uc.generator.GenerateInventoryReport(ctx, report)
	if err != nil {
		return nil, "", fmt.Errorf("reporte de inventario: %w", err)
	}
	return doc, fmt.Sprintf("inventario-%s.pdf", report.GeneratedAt.Format("20060102-1504")), nil
}
