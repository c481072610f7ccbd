package repository

import (
	"context"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// SupplierRepository define el puerto de lectura para proveedores.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id int64) (*entity.Supplier, error)
	List(ctx context.Context) ([]*entity.Supplier, error)
}
