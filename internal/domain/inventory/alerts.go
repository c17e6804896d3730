package inventory

import (
	"fmt"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/pkg/format"
)

// AlertRule parámetros de la regla de alertas.
type AlertRule struct {
	ExpirationWindowDays int
}

// DefaultAlertRule regla con la ventana de vencimiento por defecto.
var DefaultAlertRule = AlertRule{ExpirationWindowDays: ExpirationWindowDays}

// DeriveAlerts devuelve las alertas nuevas para products dado el conjunto existente.
// Crea una alerta de stock bajo o de vencimiento solo si no hay ya una no leída del
// mismo tipo para el producto. Nunca resuelve ni marca alertas existentes.
func DeriveAlerts(products []entity.Product, existing []entity.Alert, now time.Time, newID func() string) []entity.Alert {
	return DefaultAlertRule.Derive(products, existing, now, newID)
}

// ExpiringSoon indica si p entra en la ventana de vencimiento de la regla.
// Es el mismo criterio con el que Derive crea alertas de vencimiento.
func (r AlertRule) ExpiringSoon(p entity.Product, now time.Time) bool {
	return ExpiresWithin(p, now, r.ExpirationWindowDays)
}

// Derive aplica la regla. Ver DeriveAlerts.
func (r AlertRule) Derive(products []entity.Product, existing []entity.Alert, now time.Time, newID func() string) []entity.Alert {
	type key struct{ productID, kind string }
	open := make(map[key]bool, len(existing))
	for _, a := range existing {
		if !a.Read {
			open[key{a.ProductID, a.Type}] = true
		}
	}

	var created []entity.Alert
	for _, p := range products {
		if IsLowStock(p) && !open[key{p.ID, entity.AlertTypeLowStock}] {
			created = append(created, entity.Alert{
				ID:        newID(),
				ProductID: p.ID,
				Type:      entity.AlertTypeLowStock,
				Message:   fmt.Sprintf("Estoque baixo: %s (%d/%d)", p.Name, p.Quantity, p.MinStock),
				Date:      now,
			})
			open[key{p.ID, entity.AlertTypeLowStock}] = true
		}
		if r.ExpiringSoon(p, now) && !open[key{p.ID, entity.AlertTypeExpiration}] {
			created = append(created, entity.Alert{
				ID:        newID(),
				ProductID: p.ID,
				Type:      entity.AlertTypeExpiration,
				Message:   fmt.Sprintf("Produto próximo ao vencimento: %s (%s)", p.Name, format.Date(*p.ExpiresAt)),
				Date:      now,
			})
			open[key{p.ID, entity.AlertTypeExpiration}] = true
		}
	}
	return created
}
