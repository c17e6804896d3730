package usecase

import (
	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/validation"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// CatalogUseCase categorías y proveedores. No hay verificación de duplicados.
type CatalogUseCase struct {
	store repository.InventoryStore
	log   zerolog.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(store repository.InventoryStore, log zerolog.Logger) *CatalogUseCase {
	return &CatalogUseCase{store: store, log: log}
}

// Categories lista las categorías con la cantidad de productos de cada una.
func (uc *CatalogUseCase) Categories() []dto.CategoryResponse {
	products := uc.store.Products()
	categories := uc.store.Categories()
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.FromCategory(c, inventory.CountByCategory(products, c.ID)))
	}
	return out
}

func (uc *CatalogUseCase) CreateCategory(in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	c := uc.store.AddCategory(entity.Category{Name: in.Name, Description: in.Description, Color: in.Color})
	uc.log.Info().Str("category_id", c.ID).Msg("categoría creada")
	out := dto.FromCategory(c, 0)
	return &out, nil
}

func (uc *CatalogUseCase) Suppliers() []dto.SupplierResponse {
	suppliers := uc.store.Suppliers()
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, dto.FromSupplier(s))
	}
	return out
}

func (uc *CatalogUseCase) CreateSupplier(in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	s := uc.store.AddSupplier(entity.Supplier{
		Name:    in.Name,
		Contact: in.Contact,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
	})
	uc.log.Info().Str("supplier_id", s.ID).Msg("proveedor creado")
	out := dto.FromSupplier(s)
	return &out, nil
}
