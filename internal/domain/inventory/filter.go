package inventory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// FilterProducts aplica el filtro en secuencia: categoría, proveedor, término de búsqueda
// y, si hay campo de ordenamiento, un ordenamiento estable. No modifica products.
//
// El término se busca sin distinguir mayúsculas en nombre, descripción y código.
// Con Direction "asc" ordena ascendente; cualquier otro valor ordena descendente.
func FilterProducts(products []entity.Product, f entity.Filter) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	term := strings.ToLower(f.Term)
	for _, p := range products {
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.SupplierID != "" && p.SupplierID != f.SupplierID {
			continue
		}
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		out = append(out, p)
	}
	if f.SortBy != "" {
		sortProducts(out, f.SortBy, f.Direction == entity.SortAsc)
	}
	return out
}

func matchesTerm(p entity.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Code), term)
}

func sortProducts(ps []entity.Product, by string, asc bool) {
	var cmp func(a, b entity.Product) int
	switch by {
	case entity.SortByName:
		// collate.Collator no es seguro para uso concurrente: uno por llamada.
		col := collate.New(language.BrazilianPortuguese)
		cmp = func(a, b entity.Product) int { return col.CompareString(a.Name, b.Name) }
	case entity.SortByStock:
		cmp = func(a, b entity.Product) int { return a.Quantity - b.Quantity }
	case entity.SortByPrice:
		cmp = func(a, b entity.Product) int { return a.Price.Cmp(b.Price) }
	default:
		return
	}
	sort.SliceStable(ps, func(i, j int) bool {
		if asc {
			return cmp(ps[i], ps[j]) < 0
		}
		return cmp(ps[j], ps[i]) < 0
	})
}
