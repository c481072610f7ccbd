// Package inventory contiene las derivaciones de dominio que se aplican antes de
// registrar entradas y ventas.
package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-inventario/internal/domain"
)

// QuantityMode indica cómo se expresó la cantidad de una entrada.
type QuantityMode string

const (
	ModeKilograms QuantityMode = "kg"
	ModeBags      QuantityMode = "bolsitas"
)

// SaleTotalScale decimales del total de una venta.
const SaleTotalScale = 2

// KilogramsFromBags calcula bolsitas × peso por bolsita.
func KilogramsFromBags(bags, weightPerBag decimal.Decimal) decimal.Decimal {
	return bags.Mul(weightPerBag)
}

// ResolveReceiptQuantity devuelve la cantidad en kilogramos de una entrada.
// En modo bolsitas la cantidad tipeada se ignora y se deriva de bolsitas × peso.
// Un modo vacío equivale a kg.
func ResolveReceiptQuantity(mode QuantityMode, quantity, bags, weightPerBag decimal.Decimal) (decimal.Decimal, error) {
	switch mode {
	case ModeKilograms, "":
		return quantity, nil
	case ModeBags:
		if !bags.IsPositive() || !weightPerBag.IsPositive() {
			return decimal.Zero, fmt.Errorf("%w: bolsitas y peso por bolsita deben ser mayores a 0", domain.ErrInvalidInput)
		}
		return KilogramsFromBags(bags, weightPerBag), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: tipo de cantidad %q", domain.ErrInvalidInput, mode)
	}
}

// LineSubtotal calcula cantidad × precio unitario.
func LineSubtotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}

// SaleTotal suma los subtotales de las líneas y redondea a SaleTotalScale decimales.
func SaleTotal(lines []SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(LineSubtotal(l.Quantity, l.UnitPrice))
	}
	return total.Round(SaleTotalScale)
}

// SaleItem par cantidad/precio de una línea por registrar.
type SaleItem struct {
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}
