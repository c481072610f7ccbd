package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt representa una entrada de inventario (tabla entradas_inventario).
// Quantity siempre está expresada en kilogramos.
type Receipt struct {
	ID         int64
	ProductID  int64
	SupplierID *int64 // opcional
	Quantity   decimal.Decimal
	UnitPrice  decimal.Decimal
	Date       time.Time
	Notes      string
}

// LineTotal devuelve cantidad × precio unitario.
func (r Receipt) LineTotal() decimal.Decimal {
	return r.Quantity.Mul(r.UnitPrice)
}

// ReceiptRow es una entrada leída junto con el nombre de su proveedor (LEFT JOIN).
type ReceiptRow struct {
	Receipt
	SupplierName *string // nil si la entrada no tiene proveedor o no se pudo resolver
}
