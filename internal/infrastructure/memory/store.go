// Package memory implementa el contenedor de estado del inventario en memoria.
//
// Las colecciones son copy-on-write: cada mutación construye slices nuevos, de modo que
// un slice leído bajo el lock de lectura nunca se modifica después. El mutex solo
// serializa las mutaciones concurrentes del servidor HTTP; cada operación confirma
// completa, no hay transacciones ni rollback.
package memory

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.InventoryStore = (*Store)(nil)

// Observer recibe notificaciones después de cada mutación (métricas).
type Observer interface {
	ProductsChanged(total, lowStock int)
	MovementRegistered(kind string, quantity int)
	AlertsRaised(kind string, n int)
	AlertRead()
}

// Store dueño único de las colecciones canónicas y del filtro activo.
type Store struct {
	mu sync.RWMutex

	products   []entity.Product
	categories []entity.Category
	suppliers  []entity.Supplier
	movements  []entity.Movement
	alerts     []entity.Alert
	filter     entity.Filter

	now      func() time.Time
	newID    func() string
	rule     inventory.AlertRule
	log      zerolog.Logger
	observer Observer
}

// Option configura el Store.
type Option func(*Store)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator reemplaza el generador de IDs (por defecto UUID v4).
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithAlertRule reemplaza la regla de alertas (ventana de vencimiento).
func WithAlertRule(rule inventory.AlertRule) Option {
	return func(s *Store) { s.rule = rule }
}

// WithLogger asigna el logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// WithObserver registra un observador de mutaciones.
func WithObserver(o Observer) Option {
	return func(s *Store) { s.observer = o }
}

// NewStore siembra el store con seed y ejecuta la regla de alertas una vez.
func NewStore(seed repository.Snapshot, opts ...Option) *Store {
	s := &Store{
		products:   slices.Clone(seed.Products),
		categories: slices.Clone(seed.Categories),
		suppliers:  slices.Clone(seed.Suppliers),
		movements:  slices.Clone(seed.Movements),
		alerts:     slices.Clone(seed.Alerts),
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
		rule:       inventory.DefaultAlertRule,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mu.Lock()
	s.productsChangedLocked()
	s.mu.Unlock()

	s.log.Info().
		Int("products", len(s.products)).
		Int("categories", len(s.categories)).
		Int("suppliers", len(s.suppliers)).
		Int("movements", len(s.movements)).
		Int("alerts", len(s.alerts)).
		Msg("store sembrado")
	return s
}

// ── Lecturas ──────────────────────────────────────────────────────────────────

// AlertRule devuelve la regla con la que se derivan las alertas.
func (s *Store) AlertRule() inventory.AlertRule { return s.rule }

func (s *Store) Products() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products)
}

func (s *Store) Categories() []entity.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.categories)
}

func (s *Store) Suppliers() []entity.Supplier {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.suppliers)
}

func (s *Store) Movements() []entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.movements)
}

func (s *Store) Alerts() []entity.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.alerts)
}

func (s *Store) Filter() entity.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

// ProductByID búsqueda lineal; false si no existe.
func (s *Store) ProductByID(id string) (entity.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return entity.Product{}, false
}

func (s *Store) CategoryByID(id string) (entity.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Category{}, false
}

func (s *Store) SupplierByID(id string) (entity.Supplier, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sp := range s.suppliers {
		if sp.ID == id {
			return sp, true
		}
	}
	return entity.Supplier{}, false
}

// MovementsForProduct movimientos del producto en orden de inserción.
func (s *Store) MovementsForProduct(productID string) []entity.Movement {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []entity.Movement
	for _, m := range s.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out
}

// ── Mutaciones ────────────────────────────────────────────────────────────────

func (s *Store) AddProduct(p entity.Product) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.newID()
	p.RegisteredAt = s.now()
	s.products = appendCOW(s.products, p)
	s.log.Debug().Str("product_id", p.ID).Str("code", p.Code).Msg("producto agregado")

	s.productsChangedLocked()
	return p
}

func (s *Store) UpdateProduct(id string, patch entity.ProductPatch) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated, ok := s.updateProductLocked(id, patch.Apply)
	if !ok {
		return entity.Product{}, false
	}
	s.log.Debug().Str("product_id", id).Msg("producto actualizado")
	s.productsChangedLocked()
	return updated, true
}

func (s *Store) RemoveProduct(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	products := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.ID != id {
			products = append(products, p)
		}
	}
	if len(products) == len(s.products) {
		return false
	}
	movements := make([]entity.Movement, 0, len(s.movements))
	for _, m := range s.movements {
		if m.ProductID != id {
			movements = append(movements, m)
		}
	}
	alerts := make([]entity.Alert, 0, len(s.alerts))
	for _, a := range s.alerts {
		if a.ProductID != id {
			alerts = append(alerts, a)
		}
	}
	s.products, s.movements, s.alerts = products, movements, alerts
	s.log.Debug().Str("product_id", id).Msg("producto eliminado con sus movimientos y alertas")

	s.productsChangedLocked()
	return true
}

func (s *Store) RegisterMovement(m entity.Movement) entity.Movement {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.newID()
	m.Date = s.now()
	s.movements = appendCOW(s.movements, m)
	if s.observer != nil {
		s.observer.MovementRegistered(m.Type, m.Quantity)
	}

	_, ok := s.updateProductLocked(m.ProductID, func(p entity.Product) entity.Product {
		p.Quantity += m.Delta()
		return p
	})
	if !ok {
		s.log.Warn().Str("movement_id", m.ID).Str("product_id", m.ProductID).
			Msg("movimiento registrado para producto inexistente; stock sin ajustar")
		return m
	}
	s.log.Debug().Str("movement_id", m.ID).Str("product_id", m.ProductID).
		Str("type", m.Type).Int("quantity", m.Quantity).Msg("movimiento registrado")

	s.productsChangedLocked()
	return m
}

func (s *Store) AddCategory(c entity.Category) entity.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.newID()
	s.categories = appendCOW(s.categories, c)
	return c
}

func (s *Store) AddSupplier(sp entity.Supplier) entity.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()
	sp.ID = s.newID()
	s.suppliers = appendCOW(s.suppliers, sp)
	return sp
}

func (s *Store) MarkAlertRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.alerts {
		if a.ID != id {
			continue
		}
		if a.Read {
			return false
		}
		alerts := slices.Clone(s.alerts)
		alerts[i].Read = true
		s.alerts = alerts
		if s.observer != nil {
			s.observer.AlertRead()
		}
		return true
	}
	return false
}

func (s *Store) SetFilter(f entity.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = f
}

func (s *Store) ClearFilter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = entity.Filter{}
}

// ── Internos (requieren s.mu tomado) ──────────────────────────────────────────

func (s *Store) updateProductLocked(id string, fn func(entity.Product) entity.Product) (entity.Product, bool) {
	for i, p := range s.products {
		if p.ID != id {
			continue
		}
		products := slices.Clone(s.products)
		updated := fn(p)
		updated.ID, updated.RegisteredAt = p.ID, p.RegisteredAt
		products[i] = updated
		s.products = products
		return updated, true
	}
	return entity.Product{}, false
}

// productsChangedLocked ejecuta la regla de alertas sobre la colección actual.
func (s *Store) productsChangedLocked() {
	created := s.rule.Derive(s.products, s.alerts, s.now(), s.newID)
	if len(created) > 0 {
		alerts := make([]entity.Alert, 0, len(s.alerts)+len(created))
		alerts = append(append(alerts, s.alerts...), created...)
		s.alerts = alerts
		for _, a := range created {
			s.log.Info().Str("alert_id", a.ID).Str("product_id", a.ProductID).
				Str("type", a.Type).Msg(a.Message)
		}
	}
	if s.observer == nil {
		return
	}
	byKind := map[string]int{}
	for _, a := range created {
		byKind[a.Type]++
	}
	for kind, n := range byKind {
		s.observer.AlertsRaised(kind, n)
	}
	low := 0
	for _, p := range s.products {
		if inventory.IsLowStock(p) {
			low++
		}
	}
	s.observer.ProductsChanged(len(s.products), low)
}

func appendCOW[T any](in []T, v T) []T {
	out := make([]T, len(in), len(in)+1)
	copy(out, in)
	return append(out, v)
}
