package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-inventario/pkg/formato"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code     string            `json:"code"`
	Message  string            `json:"message"`
	Relation string            `json:"relation,omitempty"` // solo en DATA_FETCH
	Fields   map[string]string `json:"fields,omitempty"`   // campo → regla incumplida (VALIDATION)
}

// MoneyDTO monto con su representación formateada en pesos chilenos.
type MoneyDTO struct {
	Amount    string `json:"amount"`
	Formatted string `json:"formatted"` // ej: "$1.234.567"
}

// Money construye un MoneyDTO con el formato CLP.
func Money(v decimal.Decimal) MoneyDTO {
	return MoneyDTO{Amount: v.String(), Formatted: formato.CLP(v)}
}
