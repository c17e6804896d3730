package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

func TestFilterUseCase_SetReemplazaCompleto(t *testing.T) {
	store := newStore()
	uc := usecase.NewFilterUseCase(store)

	_, err := uc.Set(dto.FilterRequest{CategoryID: "cat-a", SortBy: "preco", Direction: "desc"})
	require.NoError(t, err)

	out, err := uc.Set(dto.FilterRequest{Term: "café"})
	require.NoError(t, err)

	assert.Equal(t, entity.Filter{Term: "café"}, store.Filter())
	assert.True(t, out.Active)
	assert.Empty(t, out.CategoryID)
}

func TestFilterUseCase_TerminoSeGuardaLiteral(t *testing.T) {
	store := newStore()
	uc := usecase.NewFilterUseCase(store)
	products := newProductUseCase(store)

	_, err := uc.Set(dto.FilterRequest{Term: "café "})
	require.NoError(t, err)
	assert.Equal(t, "café ", store.Filter().Term, "los espacios forman parte de la búsqueda")
	assert.Equal(t, 0, products.List().Total)

	_, err = uc.Set(dto.FilterRequest{Term: "café"})
	require.NoError(t, err)
	assert.Equal(t, 1, products.List().Total)
}

func TestFilterUseCase_SetInvalido(t *testing.T) {
	store := newStore()
	uc := usecase.NewFilterUseCase(store)

	_, err := uc.Set(dto.FilterRequest{SortBy: "validade"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Set(dto.FilterRequest{SortBy: "nome", Direction: "up"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	assert.True(t, store.Filter().IsEmpty(), "un filtro inválido no se aplica")
}

func TestFilterUseCase_Clear(t *testing.T) {
	store := newStore()
	uc := usecase.NewFilterUseCase(store)
	_, err := uc.Set(dto.FilterRequest{SupplierID: "sup-1"})
	require.NoError(t, err)

	uc.Clear()
	got := uc.Get()
	assert.False(t, got.Active)
	assert.Equal(t, dto.FilterResponse{}, got)
}
