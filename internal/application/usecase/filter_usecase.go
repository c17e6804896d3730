package usecase

import (
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/validation"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// FilterUseCase lee, reemplaza y limpia el filtro activo del listado de productos.
type FilterUseCase struct {
	store repository.InventoryStore
}

func NewFilterUseCase(store repository.InventoryStore) *FilterUseCase {
	return &FilterUseCase{store: store}
}

func (uc *FilterUseCase) Get() dto.FilterResponse {
	return dto.FromFilter(uc.store.Filter())
}

// Set reemplaza el filtro completo (no hace merge con el anterior).
func (uc *FilterUseCase) Set(in dto.FilterRequest) (dto.FilterResponse, error) {
	if err := validation.Struct(in); err != nil {
		return dto.FilterResponse{}, err
	}
	f := entity.Filter{
		CategoryID: in.CategoryID,
		SupplierID: in.SupplierID,
		Term:       in.Term,
		SortBy:     in.SortBy,
		Direction:  in.Direction,
	}
	uc.store.SetFilter(f)
	return dto.FromFilter(f), nil
}

func (uc *FilterUseCase) Clear() {
	uc.store.ClearFilter()
}
