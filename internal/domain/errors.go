package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrEmptySale    = errors.New("la venta debe tener al menos un producto")
	ErrZeroTotal    = errors.New("el total de la venta debe ser mayor a 0")
)

// DataFetchError indica que una lectura contra el servicio remoto de datos falló
// (red, permisos o error de consulta). Conserva la relación y la causa original.
type DataFetchError struct {
	Relation string
	Err      error
}

// NewDataFetchError envuelve err con la relación que falló. Devuelve nil si err es nil.
func NewDataFetchError(relation string, err error) error {
	if err == nil {
		return nil
	}
	var existing *DataFetchError
	if errors.As(err, &existing) {
		return err
	}
	return &DataFetchError{Relation: relation, Err: err}
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("lectura de %s falló: %v", e.Relation, e.Err)
}

func (e *DataFetchError) Unwrap() error { return e.Err }

// AsDataFetchError extrae el DataFetchError de la cadena de err, si existe.
func AsDataFetchError(err error) (*DataFetchError, bool) {
	var fe *DataFetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
