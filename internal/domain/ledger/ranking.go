package ledger

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// ProductSalesTotal total histórico de ventas de un producto (Σ cantidad × precio).
type ProductSalesTotal struct {
	ProductID    int64
	Name         string
	CurrentStock decimal.Decimal
	Total        decimal.Decimal
}

// LifetimeSalesTotals calcula el total histórico de ventas por producto, en el orden
// del catálogo recibido. Un producto sin ventas tiene total 0; las líneas de
// productos que no están en el catálogo se ignoran.
func LifetimeSalesTotals(products []*entity.Product, lines []entity.SaleLine) []ProductSalesTotal {
	byProduct := make(map[int64]decimal.Decimal, len(products))
	for _, l := range lines {
		byProduct[l.ProductID] = byProduct[l.ProductID].Add(l.Subtotal())
	}

	out := make([]ProductSalesTotal, 0, len(products))
	for _, p := range products {
		if p == nil {
			continue
		}
		total, ok := byProduct[p.ID]
		if !ok {
			total = decimal.Zero
		}
		out = append(out, ProductSalesTotal{
			ProductID:    p.ID,
			Name:         p.Name,
			CurrentStock: p.CurrentStock,
			Total:        total,
		})
	}
	return out
}

// TopN devuelve los n productos con mayor total. Los empates conservan el orden de
// catálogo. No modifica totals.
func TopN(totals []ProductSalesTotal, n int) []ProductSalesTotal {
	if n <= 0 {
		return []ProductSalesTotal{}
	}
	ranked := make([]ProductSalesTotal, len(totals))
	copy(ranked, totals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total.GreaterThan(ranked[j].Total)
	})
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
