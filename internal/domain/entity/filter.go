package entity

// Campos y direcciones de ordenamiento del listado de productos.
const (
	SortByName  = "nome"
	SortByStock = "estoque"
	SortByPrice = "preco"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// Filter es el filtro activo del listado de productos. Todos los campos son opcionales;
// el valor cero significa "sin filtro".
type Filter struct {
	CategoryID string
	SupplierID string
	Term       string
	SortBy     string
	Direction  string
}

// IsEmpty indica si el filtro no restringe ni ordena.
func (f Filter) IsEmpty() bool {
	return f == Filter{}
}
