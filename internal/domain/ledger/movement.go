// Package ledger implementa el motor de conciliación del kardex: une entradas de
// inventario y líneas de venta en movimientos, los agrupa por día y calcula los
// rankings y consolidados que alimentan los gráficos.
//
// Todas las funciones son puras: trabajan sobre copias locales y pueden usarse
// desde varias goroutines a la vez sin coordinación.
package ledger

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// Kind tipo de movimiento del kardex.
type Kind string

const (
	KindReceipt Kind = "Entrada"
	KindSale    Kind = "Venta"
)

// Valores sustitutos cuando la contraparte no existe o no se pudo resolver.
const (
	PlaceholderSupplier = "Sin proveedor"
	PlaceholderCustomer = "Cliente"
	PlaceholderNotes    = "-"
)

// Movement vista unificada de una entrada o una línea de venta de un producto.
type Movement struct {
	ID          string // "E-<id>" o "V-<id>"
	Kind        Kind
	ProductID   int64
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal // Quantity × UnitPrice
	Counterpart string          // proveedor (entradas) o cliente (ventas)
	Date        time.Time
	Notes       string
	// Unresolved es true cuando la venta padre no se resolvió y se usaron sustitutos.
	Unresolved bool
}

// FromReceipt convierte una entrada en movimiento.
func FromReceipt(r entity.ReceiptRow) Movement {
	counterpart := PlaceholderSupplier
	if r.SupplierName != nil && *r.SupplierName != "" {
		counterpart = *r.SupplierName
	}
	notes := PlaceholderNotes
	if r.Notes != "" {
		notes = r.Notes
	}
	return Movement{
		ID:          fmt.Sprintf("E-%d", r.ID),
		Kind:        KindReceipt,
		ProductID:   r.ProductID,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Total:       r.LineTotal(),
		Counterpart: counterpart,
		Date:        r.Date,
		Notes:       notes,
	}
}

// FromSaleLine convierte una línea de venta en movimiento. Si la venta padre no se
// resolvió, la contraparte es PlaceholderCustomer y la fecha queda en cero.
func FromSaleLine(l entity.SaleLineRow) Movement {
	m := Movement{
		ID:          fmt.Sprintf("V-%d", l.ID),
		Kind:        KindSale,
		ProductID:   l.ProductID,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		Total:       l.Subtotal(),
		Counterpart: PlaceholderCustomer,
		Notes:       PlaceholderNotes,
	}
	if l.SaleDate == nil {
		m.Unresolved = true
	} else {
		m.Date = *l.SaleDate
	}
	if l.CustomerName != nil && *l.CustomerName != "" {
		m.Counterpart = *l.CustomerName
	}
	return m
}

// Normalize une entradas y líneas de venta en una sola secuencia ordenada por fecha
// descendente. El orden es estable: a igual fecha, las entradas preceden a las
// ventas y cada fuente conserva el orden en que llegó.
func Normalize(receipts []entity.ReceiptRow, lines []entity.SaleLineRow) []Movement {
	out := make([]Movement, 0, len(receipts)+len(lines))
	for _, r := range receipts {
		out = append(out, FromReceipt(r))
	}
	for _, l := range lines {
		out = append(out, FromSaleLine(l))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// CountUnresolved cuenta los movimientos con contraparte sustituida.
func CountUnresolved(movs []Movement) int {
	n := 0
	for _, m := range movs {
		if m.Unresolved {
			n++
		}
	}
	return n
}
