package ledger

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-inventario/pkg/formato"
)

// DayGroup agrupa los movimientos de un día calendario con sus totales.
type DayGroup struct {
	Date          time.Time // medianoche del día, en la zona horaria del movimiento
	Key           string    // "YYYY-MM-DD"
	Movements     []Movement
	TotalSales    decimal.Decimal
	TotalReceipts decimal.Decimal
}

// DayOf trunca t al inicio de su día sin convertir de zona horaria.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// GroupByDay particiona los movimientos por día calendario. Dentro de cada grupo se
// conserva el orden de entrada (acumulación por inserción, sin reordenar por hora);
// los grupos se devuelven del día más reciente al más antiguo.
// Cada movimiento aparece exactamente en un grupo.
func GroupByDay(movs []Movement) []DayGroup {
	groups := make([]DayGroup, 0)
	index := make(map[string]int)

	for _, m := range movs {
		key := formato.DayKey(m.Date)
		i, ok := index[key]
		if !ok {
			groups = append(groups, DayGroup{
				Date:          DayOf(m.Date),
				Key:           key,
				Movements:     make([]Movement, 0, 1),
				TotalSales:    decimal.Zero,
				TotalReceipts: decimal.Zero,
			})
			i = len(groups) - 1
			index[key] = i
		}
		g := &groups[i]
		g.Movements = append(g.Movements, m)
		switch m.Kind {
		case KindSale:
			g.TotalSales = g.TotalSales.Add(m.Total)
		case KindReceipt:
			g.TotalReceipts = g.TotalReceipts.Add(m.Total)
		}
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Key > groups[j].Key
	})
	return groups
}

// Flatten concatena los movimientos de los grupos en su orden.
func Flatten(groups []DayGroup) []Movement {
	n := 0
	for _, g := range groups {
		n += len(g.Movements)
	}
	out := make([]Movement, 0, n)
	for _, g := range groups {
		out = append(out, g.Movements...)
	}
	return out
}
