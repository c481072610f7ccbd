package formato

import (
	"fmt"
	"time"
)

var (
	mesesLargos = [...]string{
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	}
	mesesCortos = [...]string{
		"ene", "feb", "mar", "abr", "may", "jun",
		"jul", "ago", "sept", "oct", "nov", "dic",
	}
	diasSemana = [...]string{
		"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
	}
)

// DayKey devuelve la clave de día "YYYY-MM-DD" en la zona horaria propia de t.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// MonthKey devuelve la clave "YYYY-MM".
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// MonthShort devuelve el nombre corto del mes en español, ej: "ene".
func MonthShort(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return mesesCortos[m-1]
}

// MonthLong devuelve el nombre del mes en español, ej: "enero".
func MonthLong(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return mesesLargos[m-1]
}

// LongDate fecha larga en español, ej: "lunes, 5 de enero de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d",
		diasSemana[t.Weekday()], t.Day(), MonthLong(t.Month()), t.Year())
}

// ShortDate formatea como "05/01/2026".
func ShortDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// Hour formatea la hora como "HH:MM" (24 h).
func Hour(t time.Time) string {
	return t.Format("15:04")
}
