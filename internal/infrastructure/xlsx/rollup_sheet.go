// Package xlsx exporta los consolidados de gráficos a una planilla Excel.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/tienda-inventario/internal/application/analytics"
	"github.com/jhoicas/tienda-inventario/pkg/formato"
)

const (
	SheetMonthly = "Mensual"
	SheetDaily   = "Diario"
)

var _ analytics.RollupSheetGenerator = (*RollupSheetGenerator)(nil)

// RollupSheetGenerator implementa analytics.RollupSheetGenerator con excelize.
type RollupSheetGenerator struct{}

func NewRollupSheetGenerator() *RollupSheetGenerator {
	return &RollupSheetGenerator{}
}

// Generate arma el libro con una hoja mensual (montos) y una diaria (cantidades).
func (g *RollupSheetGenerator) Generate(wb analytics.RollupWorkbook) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetMonthly); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(SheetDaily); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	monthly := make([][]interface{}, 0, len(wb.Monthly))
	for _, b := range wb.Monthly {
		monthly = append(monthly, []interface{}{
			b.Key, b.Label, b.SalesTotal.InexactFloat64(), b.ReceiptsTotal.InexactFloat64(),
		})
	}
	if err := writeSheet(f, SheetMonthly, bold,
		[]string{"Mes", "Etiqueta", "Ventas", "Entradas"}, monthly); err != nil {
		return nil, err
	}

	daily := make([][]interface{}, 0, len(wb.Daily))
	for _, b := range wb.Daily {
		daily = append(daily, []interface{}{
			b.Key, formato.ShortDate(b.Date), b.Entradas.InexactFloat64(), b.Salidas.InexactFloat64(),
		})
	}
	if err := writeSheet(f, SheetDaily, bold,
		[]string{"Día", "Fecha", "Entradas", "Salidas"}, daily); err != nil {
		return nil, err
	}

	// Pie con la fecha de generación en la hoja mensual.
	footer, _ := excelize.CoordinatesToCellName(1, len(monthly)+3)
	if err := f.SetCellValue(SheetMonthly, footer,
		"Generado: "+formato.ShortDate(wb.GeneratedAt)+" "+formato.Hour(wb.GeneratedAt)); err != nil {
		return nil, fmt.Errorf("xlsx: pie: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSheet(f *excelize.File, sheet string, headerStyle int, headers []string, rows [][]interface{}) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("xlsx: cabecera %s: %w", sheet, err)
		}
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("xlsx: estilo cabecera %s: %w", sheet, err)
	}
	for r, values := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, r+2)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("xlsx: fila %d de %s: %w", r+2, sheet, err)
		}
	}
	return f.SetColWidth(sheet, "A", "D", 14)
}
