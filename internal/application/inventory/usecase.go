// Package inventory contiene los casos de uso de movimientos de stock y reposición.
package inventory

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/validation"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// MovementUseCase registra entradas y salidas de stock y arma los listados de movimientos.
type MovementUseCase struct {
	store repository.InventoryStore
	delay time.Duration
	sleep func(time.Duration)
	log   zerolog.Logger

	// serializa la verificación de stock con el registro
	mu sync.Mutex
}

// NewMovementUseCase construye el caso de uso. delay es la espera simulada antes de registrar.
func NewMovementUseCase(store repository.InventoryStore, delay time.Duration, log zerolog.Logger) *MovementUseCase {
	return &MovementUseCase{store: store, delay: delay, sleep: time.Sleep, log: log}
}

// Register valida el movimiento y lo aplica sobre el stock.
// operator es el responsable por defecto cuando el request no trae uno (token del operador).
//
// Errores:
//   - validación → *validation.Error (ErrInvalidInput)
//   - producto inexistente → ErrNotFound
//   - salida mayor al stock disponible → ErrInsufficientStock
func (uc *MovementUseCase) Register(in dto.RegisterMovementRequest, operator string) (*dto.MovementResponse, error) {
	if strings.TrimSpace(in.Responsible) == "" {
		in.Responsible = operator
	}
	in.Responsible = strings.TrimSpace(in.Responsible)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if _, ok := uc.store.ProductByID(in.ProductID); !ok {
		return nil, fmt.Errorf("producto %s: %w", in.ProductID, domain.ErrNotFound)
	}

	uc.pause()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	p, ok := uc.store.ProductByID(in.ProductID)
	if !ok {
		return nil, fmt.Errorf("producto %s: %w", in.ProductID, domain.ErrNotFound)
	}
	if in.Type == entity.MovementTypeOut && in.Quantity > p.Quantity {
		return nil, fmt.Errorf("%w: quantidade excede o estoque disponível (%d %s)",
			domain.ErrInsufficientStock, p.Quantity, p.Unit)
	}

	m := uc.store.RegisterMovement(entity.Movement{
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		Responsible: in.Responsible,
		Note:        strings.TrimSpace(in.Note),
	})
	uc.log.Info().
		Str("movement_id", m.ID).
		Str("product_id", m.ProductID).
		Str("type", m.Type).
		Int("quantity", m.Quantity).
		Msg("movimiento registrado")

	out := dto.FromMovement(m, p.Name)
	return &out, nil
}

// List todos los movimientos, más recientes primero, con los totales por tipo.
func (uc *MovementUseCase) List() *dto.MovementListResponse {
	movements := inventory.SortMovementsByDateDesc(uc.store.Movements())
	names := dto.ProductNames(uc.store.Products())
	totals := inventory.CountMovements(movements, time.Time{})

	out := &dto.MovementListResponse{
		Items: make([]dto.MovementResponse, 0, len(movements)),
		In:    totals.In,
		Out:   totals.Out,
	}
	for _, m := range movements {
		out.Items = append(out.Items, dto.FromMovement(m, names[m.ProductID]))
	}
	if len(movements) > 0 {
		last := movements[0].Date
		out.LastDate = &last
	}
	return out
}

// ForProduct movimientos de un producto, más recientes primero. ErrNotFound si no existe.
func (uc *MovementUseCase) ForProduct(productID string) ([]dto.MovementResponse, error) {
	p, ok := uc.store.ProductByID(productID)
	if !ok {
		return nil, fmt.Errorf("producto %s: %w", productID, domain.ErrNotFound)
	}
	movements := inventory.SortMovementsByDateDesc(uc.store.MovementsForProduct(productID))
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.FromMovement(m, p.Name))
	}
	return out, nil
}

func (uc *MovementUseCase) pause() {
	if uc.delay > 0 {
		uc.sleep(uc.delay)
	}
}
