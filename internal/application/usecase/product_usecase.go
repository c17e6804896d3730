package usecase

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/validation"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/format"
)

// ProductUseCase alta, edición, baja y consulta de productos sobre el store.
// El store no valida; las reglas de entrada se aplican aquí.
type ProductUseCase struct {
	store repository.InventoryStore
	delay time.Duration
	sleep func(time.Duration)
	now   func() time.Time
	log   zerolog.Logger
}

// NewProductUseCase construye el caso de uso. delay es la espera simulada antes de aplicar un alta.
func NewProductUseCase(store repository.InventoryStore, delay time.Duration, log zerolog.Logger) *ProductUseCase {
	return &ProductUseCase{store: store, delay: delay, sleep: time.Sleep, now: time.Now, log: log}
}

// WithClock reemplaza el reloj usado para los indicadores de vencimiento.
func (uc *ProductUseCase) WithClock(now func() time.Time) *ProductUseCase {
	uc.now = now
	return uc
}

// Create valida, espera el delay configurado y agrega el producto. La espera no se cancela.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	p := entity.Product{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		Unit:        in.Unit,
		Code:        in.Code,
		SupplierID:  in.SupplierID,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
	}
	if in.ExpiresAt != "" {
		exp, err := parseDate(in.ExpiresAt)
		if err != nil {
			return nil, err
		}
		p.ExpiresAt = &exp
	}

	uc.pause()
	created := uc.store.AddProduct(p)
	uc.log.Info().Str("product_id", created.ID).Str("code", created.Code).Msg("producto creado")
	out := dto.FromProduct(created, uc.now(), uc.store.AlertRule())
	return &out, nil
}

// Update aplica los campos enviados. ErrNotFound si el producto no existe.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	patch := entity.ProductPatch{
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		Quantity:    in.Quantity,
		MinStock:    in.MinStock,
		Unit:        in.Unit,
		Code:        in.Code,
		SupplierID:  in.SupplierID,
		Location:    in.Location,
		ImageURL:    in.ImageURL,
	}
	if in.ExpiresAt != nil {
		exp, err := parseDate(*in.ExpiresAt)
		if err != nil {
			return nil, err
		}
		patch.ExpiresAt = &exp
	}

	updated, ok := uc.store.UpdateProduct(id, patch)
	if !ok {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	out := dto.FromProduct(updated, uc.now(), uc.store.AlertRule())
	return &out, nil
}

// Delete elimina el producto con sus movimientos y alertas.
func (uc *ProductUseCase) Delete(id string) error {
	if !uc.store.RemoveProduct(id) {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}

// Get detalle del producto: categoría, proveedor, valor en stock y movimientos más recientes primero.
func (uc *ProductUseCase) Get(id string) (*dto.ProductDetailResponse, error) {
	p, ok := uc.store.ProductByID(id)
	if !ok {
		return nil, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}

	value := p.Price.Mul(decimalFromInt(p.Quantity))
	out := &dto.ProductDetailResponse{
		Product:    dto.FromProduct(p, uc.now(), uc.store.AlertRule()),
		StockValue: value,
		StockLabel: format.Currency(value),
	}
	if c, ok := uc.store.CategoryByID(p.CategoryID); ok {
		cr := dto.FromCategory(c, inventory.CountByCategory(uc.store.Products(), c.ID))
		out.Category = &cr
	}
	if s, ok := uc.store.SupplierByID(p.SupplierID); ok {
		sr := dto.FromSupplier(s)
		out.Supplier = &sr
	}
	movements := inventory.SortMovementsByDateDesc(uc.store.MovementsForProduct(p.ID))
	out.Movements = make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out.Movements = append(out.Movements, dto.FromMovement(m, p.Name))
	}
	return out, nil
}

// List aplica el filtro activo del store al catálogo completo.
func (uc *ProductUseCase) List() *dto.ProductListResponse {
	all := uc.store.Products()
	f := uc.store.Filter()
	filtered := inventory.FilterProducts(all, f)
	return &dto.ProductListResponse{
		Items:  dto.FromProducts(filtered, uc.now(), uc.store.AlertRule()),
		Total:  len(filtered),
		Of:     len(all),
		Filter: dto.FromFilter(f),
	}
}

func (uc *ProductUseCase) pause() {
	if uc.delay > 0 {
		uc.sleep(uc.delay)
	}
}
