package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, nombre, COALESCE(descripcion, ''), categoria_id, stock_actual`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CategoryID, &p.CurrentStock); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto. stock_actual inicia en 0 y lo mantienen los triggers.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO productos (nombre, descripcion, categoria_id)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id, stock_actual`,
		product.Name, product.Description, product.CategoryID,
	).Scan(&product.ID, &product.CurrentStock)
	if err != nil {
		return writeErr("insert producto", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve nil, nil si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(ctx, `SELECT `+productColumns+` FROM productos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, readErr(entity.RelationProducts, "get producto", err)
	}
	return p, nil
}

// List devuelve el catálogo ordenado por nombre.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM productos ORDER BY nombre, id`)
	if err != nil {
		return nil, readErr(entity.RelationProducts, "list productos", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, readErr(entity.RelationProducts, "scan producto", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, readErr(entity.RelationProducts, "list productos", err)
	}
	return list, nil
}
