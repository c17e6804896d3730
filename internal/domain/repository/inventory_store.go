package repository

import (
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/inventory"
)

// InventoryReader lecturas del estado canónico. Los slices devueltos son copias.
// Las búsquedas por ID devuelven false cuando no existe; nunca fallan.
type InventoryReader interface {
	Products() []entity.Product
	Categories() []entity.Category
	Suppliers() []entity.Supplier
	Movements() []entity.Movement
	Alerts() []entity.Alert
	Filter() entity.Filter

	ProductByID(id string) (entity.Product, bool)
	CategoryByID(id string) (entity.Category, bool)
	SupplierByID(id string) (entity.Supplier, bool)
	MovementsForProduct(productID string) []entity.Movement

	// AlertRule regla de alertas vigente; las vistas la usan para el indicador de vencimiento.
	AlertRule() inventory.AlertRule
}

// InventoryStore puerto del contenedor de estado del inventario (DIP).
// Todas las operaciones son totales: una entrada mal formada deja un estado
// inconsistente pero nunca produce error. No hay validación aquí; es responsabilidad del caller.
type InventoryStore interface {
	InventoryReader

	// AddProduct asigna ID y fecha de registro; ignora los que vengan en p.
	AddProduct(p entity.Product) entity.Product
	// UpdateProduct aplica el patch; false si el ID no existe.
	UpdateProduct(id string, patch entity.ProductPatch) (entity.Product, bool)
	// RemoveProduct elimina el producto y, en cascada, sus movimientos y alertas.
	RemoveProduct(id string) bool
	// RegisterMovement asigna ID y fecha, guarda el movimiento y ajusta el stock del producto si existe.
	RegisterMovement(m entity.Movement) entity.Movement
	AddCategory(c entity.Category) entity.Category
	AddSupplier(s entity.Supplier) entity.Supplier
	// MarkAlertRead false si la alerta no existe o ya estaba leída.
	MarkAlertRead(id string) bool
	SetFilter(f entity.Filter)
	ClearFilter()
}

// Snapshot colecciones iniciales con las que se siembra el store.
// Debe cumplir el mismo esquema que las colecciones tras cualquier mutación.
type Snapshot struct {
	Products   []entity.Product
	Categories []entity.Category
	Suppliers  []entity.Supplier
	Movements  []entity.Movement
	Alerts     []entity.Alert
}
