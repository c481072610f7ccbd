package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación del puerto SupplierRepository sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// Create inserta el proveedor y asigna su ID.
func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	if err := r.q.QueryRow(ctx, `INSERT INTO proveedores (nombre) VALUES ($1) RETURNING id`, s.Name).Scan(&s.ID); err != nil {
		return writeErr("insert proveedor", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID. Devuelve nil, nil si no existe.
func (r *SupplierRepo) GetByID(ctx context.Context, id int64) (*entity.Supplier, error) {
	var s entity.Supplier
	err := r.q.QueryRow(ctx, `SELECT id, nombre FROM proveedores WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, readErr(entity.RelationSuppliers, "get proveedor", err)
	}
	return &s, nil
}

// List devuelve los proveedores ordenados por nombre.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT id, nombre FROM proveedores ORDER BY nombre, id`)
	if err != nil {
		return nil, readErr(entity.RelationSuppliers, "list proveedores", err)
	}
	defer rows.Close()
	list := make([]*entity.Supplier, 0)
	for rows.Next() {
		var s entity.Supplier
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, readErr(entity.RelationSuppliers, "scan proveedor", err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, readErr(entity.RelationSuppliers, "list proveedores", err)
	}
	return list, nil
}
