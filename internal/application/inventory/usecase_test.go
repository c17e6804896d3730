package inventory_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

func newStore(products ...entity.Product) *memory.Store {
	var mu sync.Mutex
	n := 0
	return memory.NewStore(repository.Snapshot{Products: products},
		memory.WithClock(func() time.Time { return fixedNow }),
		memory.WithIDGenerator(func() string {
			mu.Lock()
			defer mu.Unlock()
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	)
}

func product(id string, qty, min int, price string) entity.Product {
	return entity.Product{
		ID: id, Name: "Produto " + id, CategoryID: "cat-1", SupplierID: "sup-1",
		Price: decimal.RequireFromString(price), Quantity: qty, MinStock: min,
		Unit: "un", Code: "COD-" + id,
	}
}

func in(productID, kind string, qty int) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{ProductID: productID, Type: kind, Quantity: qty, Responsible: "maria"}
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementUseCase_Register_EntradaYSalida(t *testing.T) {
	store := newStore(product("a", 10, 2, "1.00"))
	uc := inventory.NewMovementUseCase(store, 0, zerolog.Nop())

	out, err := uc.Register(in("a", entity.MovementTypeIn, 5), "")
	require.NoError(t, err)
	assert.Equal(t, "Produto a", out.ProductName)
	assert.Equal(t, "15/10/2026 09:30:00", out.DateLabel)

	_, err = uc.Register(in("a", entity.MovementTypeOut, 15), "")
	require.NoError(t, err, "salida igual al stock es válida")

	p, _ := store.ProductByID("a")
	assert.Equal(t, 0, p.Quantity)
}

func TestMovementUseCase_Register_SalidaMayorAlStock(t *testing.T) {
	store := newStore(product("a", 3, 1, "1.00"))
	uc := inventory.NewMovementUseCase(store, 0, zerolog.Nop())

	_, err := uc.Register(in("a", entity.MovementTypeOut, 4), "")
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "3 un")

	assert.Empty(t, store.Movements())
	p, _ := store.ProductByID("a")
	assert.Equal(t, 3, p.Quantity)
}

func TestMovementUseCase_Register_ProductoInexistente(t *testing.T) {
	store := newStore()
	uc := inventory.NewMovementUseCase(store, 0, zerolog.Nop())

	for _, kind := range []string{entity.MovementTypeIn, entity.MovementTypeOut} {
		_, err := uc.Register(in("nope", kind, 1), "")
		assert.ErrorIs(t, err, domain.ErrNotFound, kind)
	}
	assert.Empty(t, store.Movements())
}

func TestMovementUseCase_Register_Validacion(t *testing.T) {
	store := newStore(product("a", 3, 1, "1.00"))
	uc := inventory.NewMovementUseCase(store, 0, zerolog.Nop())

	cases := map[string]dto.RegisterMovementRequest{
		"tipo inválido":     in("a", "ajuste", 1),
		"cantidad cero":     in("a", entity.MovementTypeIn, 0),
		"cantidad negativa": in("a", entity.MovementTypeIn, -2),
		"sin producto":      in("", entity.MovementTypeIn, 1),
		"sin responsable":   {ProductID: "a", Type: entity.MovementTypeIn, Quantity: 1, Responsible: "  "},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Register(req, "")
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Empty(t, store.Movements())
}

func TestMovementUseCase_Register_ResponsablePorDefectoDelOperador(t *testing.T) {
	store := newStore(product("a", 3, 1, "1.00"))
	uc := inventory.NewMovementUseCase(store, 0, zerolog.Nop())

	req := in("a", entity.MovementTypeIn, 1)
	req.Responsible = ""
	out, err := uc.Register(req, "joao")
	require.NoError(t, err)
	assert.Equal(t, "joao", out.Responsible)

	req.Responsible = "ana"
	out, err = uc.Register(req, "joao")
	require.NoError(t, err)
	assert.Equal(t, "ana", out.Responsible, "el request tiene prioridad")
}

func TestMovementUseCase_Register_EsperaElDelay(t *testing.T) {
	store := newStore(product("a", 3, 1, "1.00"))
	uc := inventory.NewMovementUseCase(store, 15*time.Millisecond, zerolog.Nop())

	start := time.Now()
	_, err := uc.Register(in("a", entity.MovementTypeIn, 1), "")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 15*time.Millisecond)
}

func TestMovementUseCase_Register_SalidasConcurrentesNoDejanStockNegativo(t *testing.T) {
	store := newStore(product("a", 10, 1, "1.00"))
	uc := inventory.NewMovementUseCase(store, 0, zerolog.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = uc.Register(in("a", entity.MovementTypeOut, 1), "")
		}()
	}
	wg.Wait()

	p, _ := store.ProductByID("a")
	assert.Equal(t, 0, p.Quantity)
	assert.Len(t, store.Movements(), 10)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / ForProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestMovementUseCase_List_TotalesYUltimaFecha(t *testing.T) {
	store := newStore(product("a", 10, 1, "1.00"), product("b", 10, 1, "1.00"))
	uc := inventory.NewMovementUseCase(store, 0, zerolog.Nop())

	empty := uc.List()
	assert.Empty(t, empty.Items)
	assert.Nil(t, empty.LastDate)

	for _, r := range []dto.RegisterMovementRequest{
		in("a", entity.MovementTypeIn, 2),
		in("b", entity.MovementTypeOut, 1),
		in("a", entity.MovementTypeOut, 3),
	} {
		_, err := uc.Register(r, "")
		require.NoError(t, err)
	}

	out := uc.List()
	require.Len(t, out.Items, 3)
	assert.Equal(t, 1, out.In)
	assert.Equal(t, 2, out.Out)
	require.NotNil(t, out.LastDate)
	assert.Equal(t, fixedNow, *out.LastDate)
	assert.Equal(t, "Produto b", out.Items[1].ProductName)
}

func TestMovementUseCase_ForProduct(t *testing.T) {
	store := newStore(product("a", 10, 1, "1.00"), product("b", 10, 1, "1.00"))
	uc := inventory.NewMovementUseCase(store, 0, zerolog.Nop())
	_, err := uc.Register(in("a", entity.MovementTypeIn, 2), "")
	require.NoError(t, err)
	_, err = uc.Register(in("b", entity.MovementTypeIn, 2), "")
	require.NoError(t, err)

	got, err := uc.ForProduct("a")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].ProductID)

	_, err = uc.ForProduct("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
