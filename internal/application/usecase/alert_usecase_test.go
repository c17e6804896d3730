package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

func TestAlertUseCase_List_AlertasDelSeed(t *testing.T) {
	uc := usecase.NewAlertUseCase(newStore())

	out := uc.List(false)
	require.Len(t, out.Items, 2)
	assert.Equal(t, 2, out.Unread)

	kinds := map[string]string{}
	for _, a := range out.Items {
		kinds[a.ProductID] = a.Type
	}
	assert.Equal(t, entity.AlertTypeLowStock, kinds["p-cafe"])
	assert.Equal(t, entity.AlertTypeExpiration, kinds["p-suco"])
}

func TestAlertUseCase_MarkRead(t *testing.T) {
	store := newStore()
	uc := usecase.NewAlertUseCase(store)
	id := uc.List(false).Items[0].ID

	require.NoError(t, uc.MarkRead(id))
	require.NoError(t, uc.MarkRead(id), "marcar dos veces no es error")

	all := uc.List(false)
	assert.Equal(t, 1, all.Unread)
	assert.Len(t, all.Items, 2)

	unread := uc.List(true)
	require.Len(t, unread.Items, 1)
	assert.NotEqual(t, id, unread.Items[0].ID)
}

func TestAlertUseCase_MarkRead_Inexistente(t *testing.T) {
	uc := usecase.NewAlertUseCase(newStore())
	assert.ErrorIs(t, uc.MarkRead("nope"), domain.ErrNotFound)
}

func TestAlertUseCase_List_ResuelveNombre(t *testing.T) {
	out := usecase.NewAlertUseCase(newStore()).List(false)
	for _, a := range out.Items {
		assert.NotEmpty(t, a.ProductName)
	}
}
