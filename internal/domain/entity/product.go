package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario.
// CategoryID y SupplierID son referencias no verificadas: un ID inexistente no es un error,
// solo hace que la búsqueda correspondiente devuelva "no encontrado".
type Product struct {
	ID           string
	Name         string
	Description  string
	CategoryID   string
	Price        decimal.Decimal // precio unitario
	Quantity     int             // stock actual; puede quedar negativo si el caller no valida
	MinStock     int             // umbral de stock mínimo
	Unit         string          // unidad de medida (un, cx, kg...)
	Code         string
	RegisteredAt time.Time // fecha de registro, inmutable
	SupplierID   string
	Location     string     // opcional
	ExpiresAt    *time.Time // opcional, fecha de vencimiento
	ImageURL     string     // opcional
}

// ProductPatch actualización parcial de un producto: los campos no nil sobrescriben,
// el resto se conserva. ID y RegisteredAt no se pueden modificar.
type ProductPatch struct {
	Name        *string
	Description *string
	CategoryID  *string
	Price       *decimal.Decimal
	Quantity    *int
	MinStock    *int
	Unit        *string
	Code        *string
	SupplierID  *string
	Location    *string
	ExpiresAt   *time.Time
	ImageURL    *string
}

// Apply devuelve una copia de p con los campos del patch aplicados.
func (patch ProductPatch) Apply(p Product) Product {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.CategoryID != nil {
		p.CategoryID = *patch.CategoryID
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	if patch.MinStock != nil {
		p.MinStock = *patch.MinStock
	}
	if patch.Unit != nil {
		p.Unit = *patch.Unit
	}
	if patch.Code != nil {
		p.Code = *patch.Code
	}
	if patch.SupplierID != nil {
		p.SupplierID = *patch.SupplierID
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.ExpiresAt != nil {
		exp := *patch.ExpiresAt
		p.ExpiresAt = &exp
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	return p
}
