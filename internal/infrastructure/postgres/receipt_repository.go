package postgres

import (
	"context"
	"time"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
)

var _ repository.ReceiptRepository = (*ReceiptRepo)(nil)

// ReceiptRepo implementación del puerto ReceiptRepository sobre PostgreSQL.
type ReceiptRepo struct {
	q Querier
}

// NewReceiptRepository construye el adaptador.
func NewReceiptRepository(q Querier) *ReceiptRepo {
	return &ReceiptRepo{q: q}
}

// Create inserta la entrada. Con fecha cero la asigna la base de datos (now()).
func (r *ReceiptRepo) Create(ctx context.Context, e *entity.Receipt) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO entradas_inventario (producto_id, proveedor_id, cantidad, precio_unitario, observaciones, fecha)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), COALESCE($6, now()))
		RETURNING id, fecha`,
		e.ProductID, e.SupplierID, e.Quantity, e.UnitPrice, e.Notes, timeOrNil(e.Date),
	).Scan(&e.ID, &e.Date)
	if err != nil {
		return writeErr("insert entrada", err)
	}
	e.Date = inUTC(e.Date)
	return nil
}

// ListByProduct devuelve las entradas del producto con el nombre del proveedor.
func (r *ReceiptRepo) ListByProduct(ctx context.Context, productID int64) ([]entity.ReceiptRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT e.id, e.producto_id, e.proveedor_id, e.cantidad, e.precio_unitario, e.fecha,
		       COALESCE(e.observaciones, ''), p.nombre
		FROM entradas_inventario e
		LEFT JOIN proveedores p ON p.id = e.proveedor_id
		WHERE e.producto_id = $1
		ORDER BY e.id`, productID)
	if err != nil {
		return nil, readErr(entity.RelationReceipts, "list entradas", err)
	}
	defer rows.Close()
	list := make([]entity.ReceiptRow, 0)
	for rows.Next() {
		var row entity.ReceiptRow
		if err := rows.Scan(&row.ID, &row.ProductID, &row.SupplierID, &row.Quantity, &row.UnitPrice,
			&row.Date, &row.Notes, &row.SupplierName); err != nil {
			return nil, readErr(entity.RelationReceipts, "scan entrada", err)
		}
		row.Date = inUTC(row.Date)
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, readErr(entity.RelationReceipts, "list entradas", err)
	}
	return list, nil
}

// ListSince devuelve las entradas con fecha >= since.
func (r *ReceiptRepo) ListSince(ctx context.Context, since time.Time) ([]entity.Receipt, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, producto_id, proveedor_id, cantidad, precio_unitario, fecha, COALESCE(observaciones, '')
		FROM entradas_inventario
		WHERE fecha >= $1
		ORDER BY fecha, id`, since)
	if err != nil {
		return nil, readErr(entity.RelationReceipts, "list entradas desde", err)
	}
	defer rows.Close()
	list := make([]entity.Receipt, 0)
	for rows.Next() {
		var e entity.Receipt
		if err := rows.Scan(&e.ID, &e.ProductID, &e.SupplierID, &e.Quantity, &e.UnitPrice, &e.Date, &e.Notes); err != nil {
			return nil, readErr(entity.RelationReceipts, "scan entrada", err)
		}
		e.Date = inUTC(e.Date)
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, readErr(entity.RelationReceipts, "list entradas desde", err)
	}
	return list, nil
}
