package dto

import "github.com/shopspring/decimal"

// ── Query parameters ──────────────────────────────────────────────────────────

// TopProductsRequest parámetros para GET /api/graficos/top.
type TopProductsRequest struct {
	N int `query:"n" validate:"omitempty,min=1,max=100"`
}

// MonthlyRequest parámetros para GET /api/graficos/mensual.
type MonthlyRequest struct {
	Months int `query:"meses" validate:"omitempty,min=1,max=60"`
}

// DailyRequest parámetros para GET /api/graficos/diario.
type DailyRequest struct {
	Days int `query:"dias" validate:"omitempty,min=1,max=366"`
}

// ExportRequest parámetros para GET /api/graficos/export.xlsx.
type ExportRequest struct {
	Months int `query:"meses" validate:"omitempty,min=1,max=60"`
	Days   int `query:"dias" validate:"omitempty,min=1,max=366"`
}

// ── Respuestas ────────────────────────────────────────────────────────────────

// TopProductDTO producto del ranking de ventas históricas.
type TopProductDTO struct {
	Rank         int             `json:"posicion"` // 1 = más vendido
	ProductID    int64           `json:"producto_id"`
	Name         string          `json:"nombre"`
	CurrentStock decimal.Decimal `json:"stock_actual"`
	SalesTotal   MoneyDTO        `json:"total_ventas"`
}

// MonthBucketDTO consolidado de un mes para el gráfico de barras.
type MonthBucketDTO struct {
	Key           string   `json:"mes"`      // YYYY-MM
	Label         string   `json:"etiqueta"` // ene, feb, ...
	SalesTotal    MoneyDTO `json:"ventas"`
	ReceiptsTotal MoneyDTO `json:"compras"`
}

// DayBucketDTO cantidades de un día para el gráfico de líneas.
type DayBucketDTO struct {
	Key      string          `json:"fecha"` // YYYY-MM-DD
	Label    string          `json:"etiqueta"`
	Entradas decimal.Decimal `json:"entradas"`
	Salidas  decimal.Decimal `json:"salidas"`
}

// ChartsSummaryDTO los tres gráficos en una sola respuesta.
type ChartsSummaryDTO struct {
	TopProducts []TopProductDTO  `json:"top_productos"`
	Monthly     []MonthBucketDTO `json:"mensual"`
	Daily       []DayBucketDTO   `json:"diario"`
}
