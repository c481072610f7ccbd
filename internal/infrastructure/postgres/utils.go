package postgres

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/tienda-inventario/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// isForeignKeyViolation verifica si un error es una violación de llave foránea (23503).
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503" // foreign_key_violation
	}
	return false
}

// writeErr traduce errores de escritura a errores de dominio.
func writeErr(op string, err error) error {
	switch {
	case isUniqueViolation(err):
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	case isForeignKeyViolation(err):
		return fmt.Errorf("%s: %w: referencia inexistente", op, domain.ErrInvalidInput)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// readErr envuelve un error de lectura como DataFetchError de la relación.
func readErr(relation, op string, err error) error {
	return domain.NewDataFetchError(relation, fmt.Errorf("%s: %w", op, err))
}

// timeOrNil nil para la fecha cero, así la columna toma su DEFAULT now().
func timeOrNil(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// inUTC pasa a UTC una fecha leída de timestamptz. pgx la entrega en time.Local y el
// día de agrupación no debe depender del TZ del proceso.
func inUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

func inUTCPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := inUTC(*t)
	return &u
}
