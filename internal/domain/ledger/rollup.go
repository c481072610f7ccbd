package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/pkg/formato"
)

// MonthBucket consolidado monetario de un mes.
type MonthBucket struct {
	Year          int
	Month         time.Month
	Key           string // "YYYY-MM"
	Label         string // nombre corto del mes, ej: "ene"
	SalesTotal    decimal.Decimal
	ReceiptsTotal decimal.Decimal
}

// DayQuantityBucket consolidado de cantidades (no montos) de un día.
type DayQuantityBucket struct {
	Date     time.Time
	Key      string // "YYYY-MM-DD"
	Entradas decimal.Decimal
	Salidas  decimal.Decimal
}

// LookbackMonths devuelve la medianoche de hoy menos n meses. Si el mes destino es
// más corto, se queda en su último día (31 mar - 1 mes = 28 feb).
func LookbackMonths(now time.Time, n int) time.Time {
	day := DayOf(now)
	first := time.Date(day.Year(), day.Month()-time.Month(n), 1, 0, 0, 0, 0, day.Location())
	last := first.AddDate(0, 1, -1).Day()
	d := day.Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, day.Location())
}

// LookbackDays devuelve la medianoche de hoy menos n días.
func LookbackDays(now time.Time, n int) time.Time {
	return DayOf(now).AddDate(0, 0, -n)
}

// MonthlyRollup agrupa ventas y entradas con fecha >= since por (año, mes).
// El total de ventas se calcula con los subtotales de las líneas, no con ventas.total.
// Solo aparecen los meses con actividad de al menos una de las dos fuentes, en orden
// cronológico ascendente.
func MonthlyRollup(sales []entity.SaleWithLines, receipts []entity.Receipt, since time.Time) []MonthBucket {
	buckets := make(map[string]*MonthBucket)
	bucket := func(t time.Time) *MonthBucket {
		key := formato.MonthKey(t.Year(), t.Month())
		b, ok := buckets[key]
		if !ok {
			b = &MonthBucket{
				Year:          t.Year(),
				Month:         t.Month(),
				Key:           key,
				Label:         formato.MonthShort(t.Month()),
				SalesTotal:    decimal.Zero,
				ReceiptsTotal: decimal.Zero,
			}
			buckets[key] = b
		}
		return b
	}

	for _, s := range sales {
		if s.Date.Before(since) {
			continue
		}
		b := bucket(s.Date)
		for _, l := range s.Lines {
			b.SalesTotal = b.SalesTotal.Add(l.Subtotal())
		}
	}
	for _, r := range receipts {
		if r.Date.Before(since) {
			continue
		}
		b := bucket(r.Date)
		b.ReceiptsTotal = b.ReceiptsTotal.Add(r.LineTotal())
	}

	out := make([]MonthBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// DailyRollup agrupa por día calendario las cantidades recibidas (entradas) y
// vendidas (salidas) con fecha >= since, en orden ascendente.
func DailyRollup(sales []entity.SaleWithLines, receipts []entity.Receipt, since time.Time) []DayQuantityBucket {
	buckets := make(map[string]*DayQuantityBucket)
	bucket := func(t time.Time) *DayQuantityBucket {
		key := formato.DayKey(t)
		b, ok := buckets[key]
		if !ok {
			b = &DayQuantityBucket{
				Date:     DayOf(t),
				Key:      key,
				Entradas: decimal.Zero,
				Salidas:  decimal.Zero,
			}
			buckets[key] = b
		}
		return b
	}

	for _, r := range receipts {
		if r.Date.Before(since) {
			continue
		}
		b := bucket(r.Date)
		b.Entradas = b.Entradas.Add(r.Quantity)
	}
	for _, s := range sales {
		if s.Date.Before(since) {
			continue
		}
		b := bucket(s.Date)
		for _, l := range s.Lines {
			b.Salidas = b.Salidas.Add(l.Quantity)
		}
	}

	out := make([]DayQuantityBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
