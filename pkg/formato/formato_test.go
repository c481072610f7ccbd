package formato_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-inventario/pkg/formato"
)

func TestCLP_SeparadorDeMilesYSinDecimales(t *testing.T) {
	assert.Equal(t, "$1.234.567", formato.CLP(decimal.NewFromFloat(1234567.4)))
	assert.Equal(t, "$1.234.568", formato.CLP(decimal.NewFromFloat(1234567.5)))
	assert.Equal(t, "$0", formato.CLP(decimal.Zero))
	assert.Equal(t, "$15", formato.CLP(decimal.NewFromInt(15)))
}

func TestCLP_Negativo(t *testing.T) {
	assert.Equal(t, "-$2.500.000", formato.CLP(decimal.NewFromInt(-2_500_000)))
}

func TestUnitCLP(t *testing.T) {
	assert.Equal(t, "CLP", formato.UnitCLP.String())
	m, err := formato.NewMoney(formato.DefaultLocale, formato.UnitCLP, "$")
	require.NoError(t, err)
	assert.Equal(t, "$9.990", m.Format(decimal.RequireFromString("9990.49")))
}

func TestNewMoney_LocaleInvalido(t *testing.T) {
	_, err := formato.NewMoney("no es un locale!!", formato.UnitCLP, "$")
	require.Error(t, err)
}

func TestLongDate(t *testing.T) {
	d := time.Date(2026, time.January, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "lunes, 5 de enero de 2026", formato.LongDate(d))
	assert.Equal(t, "05/01/2026", formato.ShortDate(d))
	assert.Equal(t, "14:30", formato.Hour(d))
}

func TestMonthNames(t *testing.T) {
	assert.Equal(t, "ene", formato.MonthShort(time.January))
	assert.Equal(t, "dic", formato.MonthShort(time.December))
	assert.Equal(t, "septiembre", formato.MonthLong(time.September))
	assert.Equal(t, "", formato.MonthShort(time.Month(13)))
	assert.Equal(t, "2026-03", formato.MonthKey(2026, time.March))
}

func TestSetLocale_InvalidoConservaFormato(t *testing.T) {
	require.Error(t, formato.SetLocale("??"))
	assert.Equal(t, "$1.000", formato.CLP(decimal.NewFromInt(1000)))
}
