package repository

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// ReceiptRepository define el puerto de persistencia para entradas_inventario.
// Las lecturas fallidas se devuelven como *domain.DataFetchError.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.Receipt) error
	// ListByProduct devuelve las entradas del producto con el nombre del proveedor, ordenadas por id.
	ListByProduct(ctx context.Context, productID int64) ([]entity.ReceiptRow, error)
	// ListSince devuelve las entradas con fecha >= since, ordenadas por fecha e id.
	ListSince(ctx context.Context, since time.Time) ([]entity.Receipt, error)
}
