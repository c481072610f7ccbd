package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo (tabla productos).
// CurrentStock lo mantiene la base de datos a partir de entradas y ventas; aquí solo se lee.
type Product struct {
	ID           int64
	Name         string
	Description  string
	CategoryID   *int64 // nil si no tiene categoría
	CurrentStock decimal.Decimal
}
