package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterReceiptRequest body para POST /api/entradas.
// En modo "bolsitas" la cantidad se calcula como bolsitas × peso_bolsa.
type RegisterReceiptRequest struct {
	ProductID    int64           `json:"producto_id" validate:"required,gt=0"`
	SupplierID   *int64          `json:"proveedor_id" validate:"omitempty,gt=0"`
	QuantityMode string          `json:"tipo_cantidad" validate:"omitempty,oneof=kg bolsitas"`
	Quantity     decimal.Decimal `json:"cantidad"`
	Bags         decimal.Decimal `json:"num_bolsitas"`
	WeightPerBag decimal.Decimal `json:"peso_bolsa"`
	UnitPrice    decimal.Decimal `json:"precio_unitario"`
	Notes        string          `json:"observaciones" validate:"max=500"`
}

// ReceiptResponse entrada registrada.
type ReceiptResponse struct {
	ID         int64           `json:"id"`
	ProductID  int64           `json:"producto_id"`
	SupplierID *int64          `json:"proveedor_id"`
	Quantity   decimal.Decimal `json:"cantidad"`
	UnitPrice  decimal.Decimal `json:"precio_unitario"`
	Date       time.Time       `json:"fecha"`
	Notes      string          `json:"observaciones"`
}

// MovementDTO movimiento del kardex tal como lo muestra el panel de un producto.
type MovementDTO struct {
	ID          string          `json:"id"`
	Kind        string          `json:"tipo"` // Entrada | Venta
	Quantity    decimal.Decimal `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Total       MoneyDTO        `json:"total"`
	Counterpart string          `json:"contraparte"`
	Date        *time.Time      `json:"fecha"` // null si la venta no se pudo resolver
	Hour        string          `json:"hora"`
	Notes       string          `json:"observaciones"`
	Unresolved  bool            `json:"sin_resolver,omitempty"`
}

// DayGroupDTO movimientos de un día con sus totales.
type DayGroupDTO struct {
	Key           string        `json:"fecha"`
	Label         string        `json:"etiqueta"` // ej: "lunes, 5 de enero de 2026"
	TotalSales    MoneyDTO      `json:"total_ventas"`
	TotalReceipts MoneyDTO      `json:"total_entradas"`
	Movements     []MovementDTO `json:"movimientos"`
}

// ProductLedgerResponse kardex agrupado por día de un producto.
type ProductLedgerResponse struct {
	ProductID    int64           `json:"producto_id"`
	ProductName  string          `json:"producto"`
	CurrentStock decimal.Decimal `json:"stock_actual"`
	Days         []DayGroupDTO   `json:"dias"`
	Cached       bool            `json:"cache"`
}
