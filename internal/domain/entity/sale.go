package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta (tabla ventas).
// Total se calcula al crear la venta como la suma de los subtotales de sus líneas.
type Sale struct {
	ID           int64
	CustomerName string
	Total        decimal.Decimal
	Date         time.Time
}

// SaleLine representa una línea de detalle de venta (tabla detalle_ventas).
type SaleLine struct {
	ID        int64
	SaleID    int64
	ProductID int64
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// Subtotal devuelve cantidad × precio unitario.
func (l SaleLine) Subtotal() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice)
}

// SaleLineRow es una línea leída junto con los datos de su venta (LEFT JOIN ventas).
// SaleDate y CustomerName son nil cuando la venta padre no se pudo resolver.
type SaleLineRow struct {
	SaleLine
	SaleDate     *time.Time
	CustomerName *string
}

// SaleWithLines agrupa una venta con sus líneas (para los consolidados).
type SaleWithLines struct {
	Sale
	Lines []SaleLine
}
