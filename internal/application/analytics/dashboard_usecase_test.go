package analytics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
)

var fixedNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

func snapshot() repository.Snapshot {
	p := func(id, cat string, qty, min int, price string, age int) entity.Product {
		return entity.Product{
			ID: id, Name: "Produto " + id, CategoryID: cat, Code: "C-" + id, Unit: "un",
			Price: decimal.RequireFromString(price), Quantity: qty, MinStock: min,
			RegisteredAt: fixedNow.AddDate(0, 0, -age),
		}
	}
	mov := func(id, productID, kind string, qty, daysAgo int) entity.Movement {
		return entity.Movement{
			ID: id, ProductID: productID, Type: kind, Quantity: qty,
			Date: fixedNow.AddDate(0, 0, -daysAgo), Responsible: "ana",
		}
	}
	return repository.Snapshot{
		Categories: []entity.Category{
			{ID: "c1", Name: "Papelaria", Color: "#111111"},
			{ID: "c2", Name: "Limpeza"},
			{ID: "c3", Name: "Vazia"},
		},
		Products: []entity.Product{
			p("a", "c1", 10, 2, "2.50", 90),
			p("b", "c1", 1, 5, "10.00", 60),
			p("c", "c2", 0, 3, "4.00", 30),
			p("d", "c2", 4, 4, "1.00", 10),
			p("e", "c1", 100, 10, "0.10", 5),
			p("f", "c1", 7, 1, "3.00", 1),
		},
		Movements: []entity.Movement{
			mov("m1", "a", entity.MovementTypeIn, 20, 45),
			mov("m2", "a", entity.MovementTypeOut, 10, 20),
			mov("m3", "b", entity.MovementTypeOut, 4, 10),
			mov("m4", "c", entity.MovementTypeOut, 3, 2),
			mov("m5", "a", entity.MovementTypeOut, 2, 1),
			mov("m6", "ghost", entity.MovementTypeOut, 50, 1),
			mov("m7", "e", entity.MovementTypeIn, 100, 5),
		},
	}
}

func newDashboard(t *testing.T) (*analytics.DashboardUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore(snapshot(), memory.WithClock(func() time.Time { return fixedNow }))
	return analytics.NewDashboardUseCase(store).WithClock(func() time.Time { return fixedNow }), store
}

func TestDashboard_Totales(t *testing.T) {
	uc, _ := newDashboard(t)
	s := uc.GetSummary()

	// 25 + 10 + 0 + 4 + 10 + 21
	assert.Equal(t, "70", s.TotalValue.String())
	assert.True(t, strings.HasSuffix(s.TotalValueLabel, "70,00"), s.TotalValueLabel)
	assert.Equal(t, 6, s.ProductCount)
	assert.Equal(t, 3, s.LowStockCount, "b, c y d (en el mínimo)")
	assert.Equal(t, 3, s.UnreadLowAlerts, "alertas creadas al sembrar")
	assert.Equal(t, "15/10/2026 09:30:00", s.UpdatedAt)
}

func TestDashboard_MovimientosUltimos30Dias(t *testing.T) {
	uc, _ := newDashboard(t)
	s := uc.GetSummary()

	assert.Equal(t, 1, s.InLast30Days, "m1 queda fuera de la ventana")
	assert.Equal(t, 5, s.OutLast30Days)
}

func TestDashboard_Widgets(t *testing.T) {
	uc, _ := newDashboard(t)
	s := uc.GetSummary()

	require.Len(t, s.Recent, 5)
	assert.Equal(t, "f", s.Recent[0].ID)
	assert.Equal(t, "b", s.Recent[4].ID)

	require.Len(t, s.Critical, 3)
	assert.Equal(t, []string{"c", "b", "d"},
		[]string{s.Critical[0].ProductID, s.Critical[1].ProductID, s.Critical[2].ProductID})

	require.Len(t, s.Categories, 3)
	assert.Equal(t, "Papelaria", s.Categories[0].Name)
	assert.Equal(t, 4, s.Categories[0].Count)
	assert.InDelta(t, 66.67, s.Categories[0].Percentage, 0.01)
	assert.Equal(t, "#3B82F6", s.Categories[1].Color, "color por defecto")
	assert.Equal(t, 0, s.Categories[2].Count)

	require.Len(t, s.TopSelling, 3, "el producto inexistente se descarta")
	assert.Equal(t, "a", s.TopSelling[0].ProductID)
	assert.Equal(t, 12, s.TopSelling[0].Quantity)
}

func TestDashboard_AlertaLeidaNoCuenta(t *testing.T) {
	uc, store := newDashboard(t)
	for _, a := range store.Alerts() {
		if a.ProductID == "b" {
			store.MarkAlertRead(a.ID)
		}
	}
	assert.Equal(t, 2, uc.GetSummary().UnreadLowAlerts)
}

func TestDashboard_InventarioVacio(t *testing.T) {
	store := memory.NewStore(repository.Snapshot{})
	s := analytics.NewDashboardUseCase(store).GetSummary()

	assert.Zero(t, s.ProductCount)
	assert.True(t, s.TotalValue.IsZero())
	assert.NotNil(t, s.Recent)
	assert.NotNil(t, s.Critical)
	assert.NotNil(t, s.TopSelling)
}
