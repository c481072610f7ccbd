package inventory

import (
	"context"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain/ledger"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
)

// SaleTxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio
// de ventas atado a esa tx. Cabecera y líneas se confirman juntas o no se confirman.
type SaleTxRunner interface {
	RunSale(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error
}

// LedgerInvalidator descarta los kardex en caché de un producto tras registrar un movimiento.
type LedgerInvalidator interface {
	InvalidateProduct(productID int64) int
}

// KardexDocument datos del kardex listos para renderizar.
type KardexDocument struct {
	Product dto.ProductResponse
	Days    []ledger.DayGroup
}

// KardexPDFGenerator puerto para renderizar el kardex de un producto en PDF.
type KardexPDFGenerator interface {
	Generate(doc KardexDocument) ([]byte, error)
}
