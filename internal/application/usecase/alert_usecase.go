package usecase

import (
	"fmt"
	"sort"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// AlertUseCase consulta y marca alertas. Las alertas las crea el store.
type AlertUseCase struct {
	store repository.InventoryStore
}

func NewAlertUseCase(store repository.InventoryStore) *AlertUseCase {
	return &AlertUseCase{store: store}
}

// List devuelve las alertas más recientes primero; unreadOnly filtra las no leídas.
func (uc *AlertUseCase) List(unreadOnly bool) *dto.AlertListResponse {
	alerts := uc.store.Alerts()
	names := dto.ProductNames(uc.store.Products())

	sort.SliceStable(alerts, func(i, j int) bool { return alerts[i].Date.After(alerts[j].Date) })

	out := &dto.AlertListResponse{Items: make([]dto.AlertResponse, 0, len(alerts))}
	for _, a := range alerts {
		if !a.Read {
			out.Unread++
		}
		if unreadOnly && a.Read {
			continue
		}
		out.Items = append(out.Items, dto.FromAlert(a, names[a.ProductID]))
	}
	return out
}

// MarkRead marca la alerta como leída. Marcar una ya leída no es error.
func (uc *AlertUseCase) MarkRead(id string) error {
	if uc.store.MarkAlertRead(id) {
		return nil
	}
	for _, a := range uc.store.Alerts() {
		if a.ID == id {
			return nil
		}
	}
	return fmt.Errorf("alerta %s: %w", id, domain.ErrNotFound)
}
