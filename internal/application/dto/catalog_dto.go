package dto

// CreateCategoryRequest body de POST /api/categories.
type CreateCategoryRequest struct {
	Name        string `json:"nome" validate:"notblank,max=100"`
	Description string `json:"descricao"`
	Color       string `json:"cor" validate:"omitempty,hexcolor"`
}

// CategoryResponse categoría con la cantidad de productos asociados.
type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"nome"`
	Description  string `json:"descricao,omitempty"`
	Color        string `json:"cor,omitempty"`
	ProductCount int    `json:"totalProdutos"`
}

// CreateSupplierRequest body de POST /api/suppliers.
type CreateSupplierRequest struct {
	Name    string `json:"nome" validate:"notblank,max=200"`
	Contact string `json:"contato"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
}

// SupplierResponse proveedor.
type SupplierResponse struct {
	ID      string `json:"id"`
	Name    string `json:"nome"`
	Contact string `json:"contato"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"telefone,omitempty"`
	Address string `json:"endereco,omitempty"`
}
