// Package pdf genera el kardex de un producto en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Producto + stock actual │  Fecha de emisión        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DÍA: lunes, 5 de enero de 2026 │ Ventas $X │ Entradas $Y   │
//	│  TABLA: Hora | Tipo | Contraparte | Cant. | P.Unit | Total   │
//	│  ... un bloque por día, del más reciente al más antiguo ...  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: totales del período                                 │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-inventario/internal/application/inventory"
	"github.com/jhoicas/tienda-inventario/internal/domain/ledger"
	"github.com/jhoicas/tienda-inventario/pkg/formato"
)

var _ inventory.KardexPDFGenerator = (*KardexPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorSale    = &props.Color{Red: 22, Green: 128, Blue: 61}
	colorReceipt = &props.Color{Red: 180, Green: 83, Blue: 9}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// KardexPDFGenerator implementa inventory.KardexPDFGenerator usando Maroto v2.
type KardexPDFGenerator struct {
	shopName string
	now      func() time.Time
}

// NewKardexPDFGenerator construye el generador. shopName va en el encabezado.
func NewKardexPDFGenerator(shopName string) *KardexPDFGenerator {
	return &KardexPDFGenerator{shopName: shopName, now: time.Now}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *KardexPDFGenerator) Generate(doc inventory.KardexDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Kardex "+doc.Product.Name, true).
		WithAuthor(g.shopName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.shopName, doc, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	if len(doc.Days) == 0 {
		m.AddRows(row.New(12).Add(col.New(12).Add(
			text.New("Sin movimientos registrados.", props.Text{Size: 9, Top: 4, Color: colorGray, Align: align.Center}),
		)))
	}

	totalSales, totalReceipts := decimal.Zero, decimal.Zero
	for _, day := range doc.Days {
		m.AddRows(dayHeaderRow(day))
		m.AddRows(tableHeaderRow())
		m.AddRows(movementRows(day.Movements)...)
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
		totalSales = totalSales.Add(day.TotalSales)
		totalReceipts = totalReceipts.Add(day.TotalReceipts)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(totalSales, totalReceipts))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: producto + stock (izq) y tienda + fecha de emisión (der).
func headerRow(shopName string, doc inventory.KardexDocument, now time.Time) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(doc.Product.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Stock actual: "+doc.Product.CurrentStock.String()+" kg", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("KARDEX DE PRODUCTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(shopName, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Emitido: "+formato.ShortDate(now)+" "+formato.Hour(now), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// dayHeaderRow: fecha larga del día con sus totales.
func dayHeaderRow(day ledger.DayGroup) core.Row {
	label := formato.LongDate(day.Date)
	if day.Date.IsZero() {
		label = "Sin fecha"
	}
	return row.New(9).Add(
		col.New(6).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 3, Color: colorPrimary,
		})),
		col.New(3).Add(text.New("Ventas: "+formato.CLP(day.TotalSales), props.Text{
			Size: 8, Top: 3, Align: align.Right, Color: colorSale,
		})),
		col.New(3).Add(text.New("Entradas: "+formato.CLP(day.TotalReceipts), props.Text{
			Size: 8, Top: 3, Align: align.Right, Color: colorReceipt,
		})),
	)
}

// tableHeaderRow: cabecera de la tabla de movimientos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: a, Color: colorGray, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		h("Hora", 1, align.Center),
		h("Tipo", 1, align.Left),
		h("Proveedor / Cliente", 3, align.Left),
		h("Cant.", 1, align.Right),
		h("P. Unit.", 2, align.Right),
		h("Total", 2, align.Right),
		h("Obs.", 2, align.Left),
	)
}

// movementRows: una fila por movimiento.
func movementRows(movs []ledger.Movement) []core.Row {
	cell := func(a align.Type) props.Text {
		return props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}
	}
	result := make([]core.Row, 0, len(movs))
	for _, mv := range movs {
		hour := "-"
		if !mv.Date.IsZero() {
			hour = formato.Hour(mv.Date)
		}
		kindColor := colorSale
		if mv.Kind == ledger.KindReceipt {
			kindColor = colorReceipt
		}
		result = append(result, row.New(6).Add(
			col.New(1).Add(text.New(hour, cell(align.Center))),
			col.New(1).Add(text.New(string(mv.Kind), props.Text{Size: 8, Top: 1, Left: 1, Color: kindColor})),
			col.New(3).Add(text.New(mv.Counterpart, cell(align.Left))),
			col.New(1).Add(text.New(mv.Quantity.String(), cell(align.Right))),
			col.New(2).Add(text.New(formato.CLP(mv.UnitPrice), cell(align.Right))),
			col.New(2).Add(text.New(formato.CLP(mv.Total), cell(align.Right))),
			col.New(2).Add(text.New(mv.Notes, cell(align.Left))),
		))
	}
	return result
}

// totalsRow: totales acumulados del kardex.
func totalsRow(sales, receipts decimal.Decimal) core.Row {
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(
			text.New("Total ventas:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2}),
			text.New("Total entradas:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
		),
		col.New(3).Add(
			text.New(formato.CLP(sales), props.Text{Size: 9, Align: align.Right, Right: 1, Color: colorSale}),
			text.New(formato.CLP(receipts), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 6, Color: colorReceipt}),
		),
	)
}
