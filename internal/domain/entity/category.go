package entity

// Category representa una categoría de productos.
type Category struct {
	ID          string
	Name        string
	Description string // opcional
	Color       string // opcional, color de presentación (#RRGGBB)
}
