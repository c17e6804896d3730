// Package pdf implementa el reporte de inventario en PDF con Maroto v2.
//
// Layout de la página A4 (horizontal):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título                   │  Fecha de emisión       │
//	│  RESUMEN: productos / valor total / stock bajo              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Producto | Categoría | Qtd | Mín | ...     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CATEGORÍAS: nombre | cantidad | %                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWarning = &props.Color{Red: 180, Green: 83, Blue: 9}
	colorDanger  = &props.Color{Red: 185, Green: 28, Blue: 28}
)

var _ usecase.InventoryReportGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa usecase.InventoryReportGenerator.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInventoryReport(_ context.Context, report usecase.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title+" - Relatório de estoque", true).
		WithAuthor(report.Title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report.Lines)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(report))

	if len(report.Categories) > 0 {
		m.AddRows(row.New(4))
		m.AddRows(categoryRows(report.Categories)...)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report usecase.InventoryReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório de estoque", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Emitido em", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(format.DateTime(report.GeneratedAt), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

func summaryRow(report usecase.InventoryReport) core.Row {
	cell := func(label, value string, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Color: color, Top: 5}),
		)
	}
	lowColor := colorPrimary
	if report.LowStockCount > 0 {
		lowColor = colorWarning
	}
	return row.New(13).Add(
		cell("Total de produtos", format.Number(len(report.Lines)), colorPrimary),
		cell("Valor em estoque", format.Currency(report.TotalValue), colorPrimary),
		cell("Estoque baixo", format.Number(report.LowStockCount), lowColor),
	)
}

var tableCols = []struct {
	label string
	size  int
	align align.Type
}{
	{"Código", 1, align.Left},
	{"Produto", 3, align.Left},
	{"Categoria", 2, align.Left},
	{"Qtd.", 1, align.Right},
	{"Mín.", 1, align.Right},
	{"Preço", 1, align.Right},
	{"Valor", 2, align.Right},
	{"Status", 1, align.Center},
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(tableCols))
	for _, c := range tableCols {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableRows(lines []usecase.InventoryReportLine) []core.Row {
	rows := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		values := []string{
			l.Code,
			format.Truncate(l.Name, 40),
			format.Truncate(l.Category, 24),
			fmt.Sprintf("%s %s", format.Number(l.Quantity), l.Unit),
			format.Number(l.MinStock),
			format.Currency(l.Price),
			format.Currency(l.Value),
			l.Status,
		}
		cols := make([]core.Col, 0, len(tableCols))
		for i, c := range tableCols {
			p := props.Text{Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1}
			if i == len(tableCols)-1 {
				p.Color = statusColor(l.Status)
				p.Style = fontstyle.Bold
			}
			cols = append(cols, col.New(c.size).Add(text.New(values[i], p)))
		}
		rows = append(rows, row.New(6).Add(cols...))
	}
	return rows
}

func totalRow(report usecase.InventoryReport) core.Row {
	return row.New(9).Add(
		col.New(9).Add(text.New("VALOR TOTAL EM ESTOQUE:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 2,
		})),
		col.New(2).Add(text.New(format.Currency(report.TotalValue), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Top: 2, Right: 1,
		})),
		col.New(1),
	)
}

func categoryRows(shares []inventory.CategoryShare) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(text.New("PRODUTOS POR CATEGORIA", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}))),
	}
	for _, s := range shares {
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(s.Category.Name, props.Text{Size: 8, Left: 2})),
			col.New(2).Add(text.New(format.Number(s.Count), props.Text{Size: 8, Align: align.Right})),
			col.New(2).Add(text.New(fmt.Sprintf("%.1f%%", s.Percentage), props.Text{
				Size: 8, Align: align.Right, Color: colorGray,
			})),
			col.New(4),
		))
	}
	return rows
}

func statusColor(status string) *props.Color {
	switch status {
	case inventory.StockStatusOut:
		return colorDanger
	case inventory.StockStatusLow:
		return colorWarning
	default:
		return colorGray
	}
}
