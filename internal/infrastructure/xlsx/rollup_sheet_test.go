package xlsx_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/tienda-inventario/internal/application/analytics"
	"github.com/jhoicas/tienda-inventario/internal/domain/ledger"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/xlsx"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func openWorkbook(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// ─────────────────────────────────────────────────────────────────────────────
// Generate
// ─────────────────────────────────────────────────────────────────────────────

func TestRollupSheet_HojasYFilas(t *testing.T) {
	wb := analytics.RollupWorkbook{
		GeneratedAt: time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
		Monthly: []ledger.MonthBucket{
			{Year: 2026, Month: time.February, Key: "2026-02", Label: "feb",
				SalesTotal: decimal.NewFromInt(1500), ReceiptsTotal: decimal.Zero},
			{Year: 2026, Month: time.March, Key: "2026-03", Label: "mar",
				SalesTotal: decimal.NewFromInt(0), ReceiptsTotal: decimal.NewFromInt(9000)},
		},
		Daily: []ledger.DayQuantityBucket{
			{Date: time.Date(2026, 3, 30, 0, 0, 0, 0, time.UTC), Key: "2026-03-30",
				Entradas: decimal.NewFromInt(10), Salidas: decimal.NewFromFloat(2.5)},
		},
	}

	out, err := xlsx.NewRollupSheetGenerator().Generate(wb)
	require.NoError(t, err)

	f := openWorkbook(t, out)
	assert.ElementsMatch(t, []string{xlsx.SheetMonthly, xlsx.SheetDaily}, f.GetSheetList())

	monthly, err := f.GetRows(xlsx.SheetMonthly)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(monthly), 3)
	assert.Equal(t, []string{"Mes", "Etiqueta", "Ventas", "Entradas"}, monthly[0])
	assert.Equal(t, "2026-02", monthly[1][0])
	assert.Equal(t, "1500", monthly[1][2])
	assert.Equal(t, "9000", monthly[2][3])

	daily, err := f.GetRows(xlsx.SheetDaily)
	require.NoError(t, err)
	require.Len(t, daily, 2)
	assert.Equal(t, "2026-03-30", daily[1][0])
	assert.Equal(t, "2.5", daily[1][3])
}

func TestRollupSheet_Vacio(t *testing.T) {
	out, err := xlsx.NewRollupSheetGenerator().Generate(analytics.RollupWorkbook{GeneratedAt: time.Now()})
	require.NoError(t, err)

	f := openWorkbook(t, out)
	rows, err := f.GetRows(xlsx.SheetDaily)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
