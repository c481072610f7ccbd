package repository

import (
	"context"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para productos (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	// List devuelve el catálogo ordenado por nombre ascendente (orden de catálogo).
	List(ctx context.Context) ([]*entity.Product, error)
}
