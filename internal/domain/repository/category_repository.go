package repository

import (
	"context"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para categorias (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	// List devuelve las categorías ordenadas por nombre ascendente.
	List(ctx context.Context) ([]*entity.Category, error)
}
