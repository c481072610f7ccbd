package dto

import "github.com/shopspring/decimal"

// CreateCategoryRequest body para POST /api/categorias.
type CreateCategoryRequest struct {
	Name        string `json:"nombre" validate:"required,min=1,max=120"`
	Description string `json:"descripcion" validate:"max=500"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// CreateProductRequest body para POST /api/productos.
type CreateProductRequest struct {
	Name        string `json:"nombre" validate:"required,min=1,max=200"`
	Description string `json:"descripcion" validate:"max=1000"`
	CategoryID  int64  `json:"categoria_id" validate:"required,gt=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"nombre"`
	Description  string          `json:"descripcion"`
	CategoryID   *int64          `json:"categoria_id"`
	CurrentStock decimal.Decimal `json:"stock_actual"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}

// InventoryRowDTO fila del listado de inventario: producto con su total histórico de ventas.
type InventoryRowDTO struct {
	ProductID    int64           `json:"producto_id"`
	Name         string          `json:"nombre"`
	CurrentStock decimal.Decimal `json:"stock_actual"`
	SalesTotal   MoneyDTO        `json:"total_ventas"`
}

// InventoryOverviewResponse listado de inventario filtrado por búsqueda.
type InventoryOverviewResponse struct {
	Search string            `json:"busqueda,omitempty"`
	Items  []InventoryRowDTO `json:"items"`
}
