package usecase_test

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func seqIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func ptr[T any](v T) *T { return &v }

func dateOf(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// seed catálogo pequeño: dos categorías, un proveedor y tres productos (uno con stock bajo).
func seed() repository.Snapshot {
	return repository.Snapshot{
		Categories: []entity.Category{
			{ID: "cat-a", Name: "Alimentos", Color: "#10B981"},
			{ID: "cat-b", Name: "Bebidas"},
		},
		Suppliers: []entity.Supplier{
			{ID: "sup-1", Name: "Distribuidora Sul", Email: "vendas@sul.com.br"},
		},
		Products: []entity.Product{
			{
				ID: "p-arroz", Name: "Arroz", CategoryID: "cat-a", SupplierID: "sup-1",
				Price: decimal.RequireFromString("25.90"), Quantity: 40, MinStock: 10,
				Unit: "pct", Code: "ALI-001", RegisteredAt: fixedNow.AddDate(0, -2, 0),
			},
			{
				ID: "p-cafe", Name: "Café", CategoryID: "cat-a", SupplierID: "sup-1",
				Price: decimal.RequireFromString("18.50"), Quantity: 3, MinStock: 8,
				Unit: "pct", Code: "ALI-002", RegisteredAt: fixedNow.AddDate(0, -1, 0),
			},
			{
				ID: "p-suco", Name: "Suco", CategoryID: "cat-b", SupplierID: "sup-1",
				Price: decimal.RequireFromString("7.00"), Quantity: 12, MinStock: 4,
				Unit: "un", Code: "BEB-001", RegisteredAt: fixedNow.AddDate(0, 0, -3),
				ExpiresAt: dateOf("2026-10-30"),
			},
		},
	}
}

func newStore() *memory.Store {
	return memory.NewStore(seed(),
		memory.WithClock(clock),
		memory.WithIDGenerator(seqIDs()),
	)
}
