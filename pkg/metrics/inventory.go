package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// InventoryMetrics refleja las mutaciones del store (se registra como observador).
type InventoryMetrics struct {
	products     prometheus.Gauge
	lowStock     prometheus.Gauge
	movements    *prometheus.CounterVec
	movedUnits   *prometheus.CounterVec
	alertsRaised *prometheus.CounterVec
	alertsRead   prometheus.Counter
}

// NewInventoryMetrics registra las métricas de inventario en el registerer dado.
// Con reg nil devuelve una instancia inerte.
func NewInventoryMetrics(reg prometheus.Registerer) *InventoryMetrics {
	if reg == nil {
		return &InventoryMetrics{}
	}
	m := &InventoryMetrics{
		products: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "estoque_products",
			Help: "Number of products in the inventory.",
		}),
		lowStock: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "estoque_products_low_stock",
			Help: "Number of products at or below their minimum stock.",
		}),
		movements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estoque_movements_total",
			Help: "Stock movements registered, by type.",
		}, []string{"type"}),
		movedUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estoque_movement_units_total",
			Help: "Units moved in or out of stock, by movement type.",
		}, []string{"type"}),
		alertsRaised: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "estoque_alerts_raised_total",
			Help: "Alerts raised by the alert rule, by type.",
		}, []string{"type"}),
		alertsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "estoque_alerts_read_total",
			Help: "Alerts marked as read.",
		}),
	}
	reg.MustRegister(m.products, m.lowStock, m.movements, m.movedUnits, m.alertsRaised, m.alertsRead)
	return m
}

// ProductsChanged actualiza los gauges de productos.
func (m *InventoryMetrics) ProductsChanged(total, lowStock int) {
	if m == nil || m.products == nil {
		return
	}
	m.products.Set(float64(total))
	m.lowStock.Set(float64(lowStock))
}

// MovementRegistered cuenta el movimiento y sus unidades.
func (m *InventoryMetrics) MovementRegistered(kind string, quantity int) {
	if m == nil || m.movements == nil {
		return
	}
	kind = normalizeLabel(kind)
	m.movements.WithLabelValues(kind).Inc()
	if quantity > 0 {
		m.movedUnits.WithLabelValues(kind).Add(float64(quantity))
	}
}

// AlertsRaised suma n alertas nuevas del tipo dado.
func (m *InventoryMetrics) AlertsRaised(kind string, n int) {
	if m == nil || m.alertsRaised == nil || n <= 0 {
		return
	}
	m.alertsRaised.WithLabelValues(normalizeLabel(kind)).Add(float64(n))
}

// AlertRead cuenta una alerta marcada como leída.
func (m *InventoryMetrics) AlertRead() {
	if m == nil || m.alertsRead == nil {
		return
	}
	m.alertsRead.Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
