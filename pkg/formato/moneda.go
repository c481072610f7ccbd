// Package formato contiene los formatos de presentación compartidos: moneda
// localizada (por defecto pesos chilenos) y fechas en español.
package formato

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale es la configuración regional usada por CLP.
const DefaultLocale = "es-CL"

// Money formatea montos según una configuración regional y una moneda ISO 4217.
type Money struct {
	printer *message.Printer
	symbol  string
	scale   int
}

// NewMoney construye un formateador. La cantidad de decimales se toma de la moneda
// (CLP no usa decimales, USD usa 2).
func NewMoney(locale string, unit currency.Unit, symbol string) (*Money, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("formato: locale %q inválido: %w", locale, err)
	}
	scale, _ := currency.Standard.Rounding(unit)
	return &Money{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
		scale:   scale,
	}, nil
}

// MustMoney es NewMoney que entra en pánico ante un locale inválido.
func MustMoney(locale string, unit currency.Unit, symbol string) *Money {
	m, err := NewMoney(locale, unit, symbol)
	if err != nil {
		panic(err)
	}
	return m
}

// Format redondea a la escala de la moneda y aplica separadores de miles del locale.
// Ej. (es-CL, CLP): 1234567.4 → "$1.234.567"; -2500 → "-$2.500".
func (m *Money) Format(v decimal.Decimal) string {
	r := v.Round(int32(m.scale))
	sign := ""
	if r.IsNegative() {
		sign = "-"
		r = r.Neg()
	}
	if m.scale == 0 {
		return sign + m.symbol + m.printer.Sprintf("%d", r.IntPart())
	}
	f, _ := r.Float64()
	return sign + m.symbol + m.printer.Sprintf("%.*f", m.scale, f)
}

// UnitCLP peso chileno; x/text no lo exporta como variable.
var UnitCLP = currency.MustParseISO("CLP")

var clp = MustMoney(DefaultLocale, UnitCLP, "$")

// SetLocale cambia la configuración regional de CLP. Se llama una vez al arrancar,
// antes de atender peticiones.
func SetLocale(locale string) error {
	m, err := NewMoney(locale, UnitCLP, "$")
	if err != nil {
		return err
	}
	clp = m
	return nil
}

// CLP formatea un monto en pesos chilenos con separador de miles, ej: "$1.234.567".
func CLP(v decimal.Decimal) string {
	return clp.Format(v)
}
