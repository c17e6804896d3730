package entity

// Supplier representa un proveedor.
type Supplier struct {
	ID      string
	Name    string
	Contact string // persona de contacto
	Email   string
	Phone   string
	Address string
}
