package inventory

import (
	"math"
	"time"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ExpirationWindowDays ventana (en días) para considerar un producto próximo a vencer.
const ExpirationWindowDays = 30

// Estados de stock para presentación.
const (
	StockStatusOut    = "esgotado"
	StockStatusLow    = "baixo"
	StockStatusNormal = "normal"
)

// IsLowStock indica si la cantidad está en o por debajo del mínimo.
func IsLowStock(p entity.Product) bool {
	return p.Quantity <= p.MinStock
}

// IsExpiringSoon indica si el producto vence dentro de la ventana por defecto.
// Un producto ya vencido también cuenta (días negativos <= 30).
func IsExpiringSoon(p entity.Product, now time.Time) bool {
	return ExpiresWithin(p, now, ExpirationWindowDays)
}

// ExpiresWithin indica si faltan como máximo days días (redondeo hacia arriba) para el vencimiento.
// Sin fecha de vencimiento siempre es false.
func ExpiresWithin(p entity.Product, now time.Time, days int) bool {
	if p.ExpiresAt == nil {
		return false
	}
	return DaysUntil(*p.ExpiresAt, now) <= days
}

// DaysUntil devuelve ceil((t - now) / 24h).
func DaysUntil(t, now time.Time) int {
	return int(math.Ceil(t.Sub(now).Hours() / 24))
}

// StockStatus clasifica el stock del producto: esgotado, baixo o normal.
func StockStatus(p entity.Product) string {
	switch {
	case p.Quantity <= 0:
		return StockStatusOut
	case IsLowStock(p):
		return StockStatusLow
	default:
		return StockStatusNormal
	}
}
