package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de una venta.
type SaleItemRequest struct {
	ProductID int64           `json:"producto_id" validate:"required,gt=0"`
	Quantity  decimal.Decimal `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
}

// RegisterSaleRequest body para POST /api/ventas.
type RegisterSaleRequest struct {
	CustomerName string            `json:"cliente_nombre" validate:"max=200"`
	Items        []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleLineResponse línea registrada.
type SaleLineResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"producto_id"`
	Quantity  decimal.Decimal `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precio_unitario"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse venta registrada con sus líneas.
type SaleResponse struct {
	ID           int64              `json:"id"`
	CustomerName string             `json:"cliente_nombre"`
	Total        MoneyDTO           `json:"total"`
	Date         time.Time          `json:"fecha"`
	Lines        []SaleLineResponse `json:"items"`
}
