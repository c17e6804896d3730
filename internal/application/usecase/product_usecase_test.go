package usecase_test

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/application/validation"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
)

func newProductUseCase(store *memory.Store) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(store, 0, zerolog.Nop()).WithClock(clock)
}

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:       "Feijão",
		CategoryID: "cat-a",
		SupplierID: "sup-1",
		Price:      decimal.RequireFromString("9.99"),
		Quantity:   20,
		MinStock:   5,
		Unit:       "kg",
		Code:       "ALI-003",
		ExpiresAt:  "2027-01-10",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_Create_AgregaConIDyFecha(t *testing.T) {
	store := newStore()
	uc := newProductUseCase(store)

	out, err := uc.Create(validCreate())
	require.NoError(t, err)

	assert.Equal(t, "id-3", out.ID, "id-1 y id-2 son las alertas del seed")
	assert.Equal(t, fixedNow, out.RegisteredAt)
	assert.True(t, strings.HasSuffix(out.PriceLabel, "9,99"), out.PriceLabel)
	require.NotNil(t, out.ExpiresAt)
	assert.Equal(t, "2027-01-10", *out.ExpiresAt)
	assert.Equal(t, "normal", out.Status)
	assert.False(t, out.ExpiringSoon)
	assert.Len(t, store.Products(), 4)
}

func TestProductUseCase_Create_EsperaElDelayConfigurado(t *testing.T) {
	store := newStore()
	start := time.Now()
	uc := usecase.NewProductUseCase(store, 20*time.Millisecond, zerolog.Nop())

	_, err := uc.Create(validCreate())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestProductUseCase_Create_CamposObligatorios(t *testing.T) {
	uc := newProductUseCase(newStore())

	in := validCreate()
	in.Name = "   "
	in.Code = ""
	in.Quantity = -1
	in.Price = decimal.RequireFromString("-0.01")

	_, err := uc.Create(in)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "nome")
	assert.Contains(t, verr.Fields, "codigo")
	assert.Contains(t, verr.Fields, "quantidadeEmEstoque")
	assert.Contains(t, verr.Fields, "preco")
}

func TestProductUseCase_Create_ValidadeMalFormada(t *testing.T) {
	store := newStore()
	uc := newProductUseCase(store)

	in := validCreate()
	in.ExpiresAt = "10/01/2027"

	_, err := uc.Create(in)
	var verr *validation.Error
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "validade")
	assert.Len(t, store.Products(), 3, "un alta inválida no modifica el store")
}

func TestProductUseCase_Create_StockBajoGeneraAlerta(t *testing.T) {
	store := newStore()
	uc := newProductUseCase(store)

	in := validCreate()
	in.Quantity = 2
	out, err := uc.Create(in)
	require.NoError(t, err)
	assert.True(t, out.LowStock)

	var found bool
	for _, a := range store.Alerts() {
		if a.ProductID == out.ID && a.Type == entity.AlertTypeLowStock {
			found = true
		}
	}
	assert.True(t, found)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_Update_SoloCamposEnviados(t *testing.T) {
	store := newStore()
	uc := newProductUseCase(store)

	out, err := uc.Update("p-arroz", dto.UpdateProductRequest{
		Price:     ptr(decimal.RequireFromString("27.00")),
		ExpiresAt: ptr("2027-03-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Arroz", out.Name)
	assert.Equal(t, 40, out.Quantity)
	assert.True(t, decimal.RequireFromString("27.00").Equal(out.Price))
	require.NotNil(t, out.ExpiresAt)
	assert.Equal(t, "2027-03-01", *out.ExpiresAt)
}

func TestProductUseCase_Update_ProductoInexistente(t *testing.T) {
	uc := newProductUseCase(newStore())
	_, err := uc.Update("nope", dto.UpdateProductRequest{Name: ptr("X")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_Update_NombreVacioEsInvalido(t *testing.T) {
	uc := newProductUseCase(newStore())
	_, err := uc.Update("p-arroz", dto.UpdateProductRequest{Name: ptr("  ")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_Delete_CascadaYNotFound(t *testing.T) {
	store := newStore()
	uc := newProductUseCase(store)

	require.NoError(t, uc.Delete("p-cafe"))
	_, ok := store.ProductByID("p-cafe")
	assert.False(t, ok)
	for _, a := range store.Alerts() {
		assert.NotEqual(t, "p-cafe", a.ProductID)
	}

	assert.ErrorIs(t, uc.Delete("p-cafe"), domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Get / List
// ──────────────────────────────────────────────────────────────────────────────

func TestProductUseCase_Get_DetalleConReferencias(t *testing.T) {
	store := newStore()
	store.RegisterMovement(entity.Movement{ProductID: "p-arroz", Type: entity.MovementTypeOut, Quantity: 5, Responsible: "ana"})
	uc := newProductUseCase(store)

	out, err := uc.Get("p-arroz")
	require.NoError(t, err)

	require.NotNil(t, out.Category)
	assert.Equal(t, "Alimentos", out.Category.Name)
	assert.Equal(t, 2, out.Category.ProductCount)
	require.NotNil(t, out.Supplier)
	assert.Equal(t, "Distribuidora Sul", out.Supplier.Name)
	// 35 × 25,90
	assert.True(t, strings.HasSuffix(out.StockLabel, "906,50"), out.StockLabel)
	require.Len(t, out.Movements, 1)
	assert.Equal(t, "Arroz", out.Movements[0].ProductName)
}

func TestProductUseCase_Get_ReferenciaRotaEsNil(t *testing.T) {
	store := newStore()
	uc := newProductUseCase(store)
	_, err := uc.Update("p-suco", dto.UpdateProductRequest{CategoryID: ptr("cat-x")})
	require.NoError(t, err)

	out, err := uc.Get("p-suco")
	require.NoError(t, err)
	assert.Nil(t, out.Category)
	assert.NotNil(t, out.Supplier)
}

func TestProductUseCase_Get_NotFound(t *testing.T) {
	_, err := newProductUseCase(newStore()).Get("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_List_AplicaFiltroActivo(t *testing.T) {
	store := newStore()
	store.SetFilter(entity.Filter{CategoryID: "cat-a", SortBy: entity.SortByStock, Direction: entity.SortAsc})
	uc := newProductUseCase(store)

	out := uc.List()
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, 3, out.Of)
	assert.True(t, out.Filter.Active)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "p-cafe", out.Items[0].ID)
	assert.Equal(t, "p-arroz", out.Items[1].ID)
	assert.Equal(t, "baixo", out.Items[0].Status)
}

func TestProductUseCase_List_VencimientoProximo(t *testing.T) {
	out := newProductUseCase(newStore()).List()
	for _, p := range out.Items {
		assert.Equal(t, p.ID == "p-suco", p.ExpiringSoon, p.ID)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventana de vencimiento configurada
// ──────────────────────────────────────────────────────────────────────────────

func expirationAlerts(store *memory.Store, productID string) int {
	n := 0
	for _, a := range store.Alerts() {
		if a.ProductID == productID && a.Type == entity.AlertTypeExpiration {
			n++
		}
	}
	return n
}

func TestProductUseCase_VentanaDeVencimiento_IndicadorYAlertaCoinciden(t *testing.T) {
	store := memory.NewStore(seed(),
		memory.WithClock(clock),
		memory.WithIDGenerator(seqIDs()),
		memory.WithAlertRule(inventory.AlertRule{ExpirationWindowDays: 7}),
	)
	uc := newProductUseCase(store)

	lejos := validCreate()
	lejos.Code = "ALI-010"
	lejos.ExpiresAt = fixedNow.AddDate(0, 0, 20).Format("2006-01-02")
	outLejos, err := uc.Create(lejos)
	require.NoError(t, err)
	assert.False(t, outLejos.ExpiringSoon, "20 días queda fuera de una ventana de 7")
	assert.Equal(t, 0, expirationAlerts(store, outLejos.ID))

	cerca := validCreate()
	cerca.Code = "ALI-011"
	cerca.ExpiresAt = fixedNow.AddDate(0, 0, 5).Format("2006-01-02")
	outCerca, err := uc.Create(cerca)
	require.NoError(t, err)
	assert.True(t, outCerca.ExpiringSoon)
	assert.Equal(t, 1, expirationAlerts(store, outCerca.ID))

	for _, p := range uc.List().Items {
		assert.Equal(t, expirationAlerts(store, p.ID) > 0, p.ExpiringSoon, p.ID)
	}
}
