package repository

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas y detalle_ventas.
// Las lecturas fallidas se devuelven como *domain.DataFetchError.
type SaleRepository interface {
	// Create inserta la cabecera y asigna el ID; si Date es cero la fecha es la del servidor.
	Create(ctx context.Context, sale *entity.Sale) error
	// CreateLines inserta en lote las líneas (venta_id ya asignado) y completa sus IDs.
	CreateLines(ctx context.Context, lines []entity.SaleLine) error
	// ListLinesByProduct devuelve las líneas del producto con fecha y cliente de su venta, ordenadas por id.
	ListLinesByProduct(ctx context.Context, productID int64) ([]entity.SaleLineRow, error)
	// ListLines devuelve todas las líneas de venta (sin rango de fechas), ordenadas por id.
	ListLines(ctx context.Context) ([]entity.SaleLine, error)
	// ListSince devuelve las ventas con fecha >= since junto con sus líneas.
	ListSince(ctx context.Context, since time.Time) ([]entity.SaleWithLines, error)
}
