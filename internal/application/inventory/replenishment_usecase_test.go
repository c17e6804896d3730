package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/inventory"
)

func TestReplenishment_SoloStockBajoOrdenadoPorCriticidad(t *testing.T) {
	store := newStore(
		product("ok", 50, 10, "1.00"),
		product("medio", 6, 8, "2.00"),    // 0,75
		product("critico", 1, 10, "3.50"), // 0,10
		product("cero", 0, 0, "9.00"),     // mínimo 0: ratio 0
	)
	out := inventory.NewReplenishmentUseCase(store).GenerateReplenishmentList()

	require.Len(t, out.Items, 3)
	ids := []string{out.Items[0].ProductID, out.Items[1].ProductID, out.Items[2].ProductID}
	assert.Equal(t, []string{"cero", "critico", "medio"}, ids)
	for i, it := range out.Items {
		assert.Equal(t, i+1, it.Priority)
	}
}

func TestReplenishment_CantidadesYCosto(t *testing.T) {
	store := newStore(
		product("a", 1, 10, "3.50"), // ideal 15, sugerida 14, costo 49
		product("b", 6, 7, "2.00"),  // ideal ceil(10,5)=11, sugerida 5, costo 10
	)
	out := inventory.NewReplenishmentUseCase(store).GenerateReplenishmentList()
	require.Len(t, out.Items, 2)

	a := out.Items[0]
	assert.Equal(t, "a", a.ProductID)
	assert.Equal(t, 15, a.IdealStock)
	assert.Equal(t, 14, a.SuggestedOrderQty)
	assert.Equal(t, "49", a.EstimatedOrderCost.String())

	b := out.Items[1]
	assert.Equal(t, 11, b.IdealStock)
	assert.Equal(t, 5, b.SuggestedOrderQty)

	assert.Equal(t, "59", out.TotalCost.String())
	assert.NotEmpty(t, out.TotalLabel)
}

func TestReplenishment_SugeridaNuncaNegativa(t *testing.T) {
	// Con mínimo 0 y cantidad 0 el ideal es 0.
	out := inventory.NewReplenishmentUseCase(newStore(product("z", 0, 0, "5.00"))).GenerateReplenishmentList()
	require.Len(t, out.Items, 1)
	assert.Equal(t, 0, out.Items[0].SuggestedOrderQty)
	assert.True(t, out.TotalCost.IsZero())
}

func TestReplenishment_SinProductosBajos(t *testing.T) {
	out := inventory.NewReplenishmentUseCase(newStore(product("ok", 5, 1, "1.00"))).GenerateReplenishmentList()
	assert.NotNil(t, out.Items)
	assert.Empty(t, out.Items)
}
