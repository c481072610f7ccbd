package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (ventas + detalle_ventas).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Dentro de TxRunner.RunSale recibe la tx.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera. Con fecha cero la asigna la base de datos (now()).
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO ventas (cliente_nombre, total, fecha)
		VALUES (NULLIF($1, ''), $2, COALESCE($3, now()))
		RETURNING id, fecha`,
		s.CustomerName, s.Total, timeOrNil(s.Date),
	).Scan(&s.ID, &s.Date)
	if err != nil {
		return writeErr("insert venta", err)
	}
	s.Date = inUTC(s.Date)
	return nil
}

// CreateLines inserta las líneas en un solo batch y completa sus IDs.
func (r *SaleRepo) CreateLines(ctx context.Context, lines []entity.SaleLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i := range lines {
		l := &lines[i]
		batch.Queue(`
			INSERT INTO detalle_ventas (venta_id, producto_id, cantidad, precio_unitario)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			l.SaleID, l.ProductID, l.Quantity, l.UnitPrice,
		).QueryRow(func(row pgx.Row) error {
			return row.Scan(&l.ID)
		})
	}
	if err := r.q.SendBatch(ctx, batch).Close(); err != nil {
		return writeErr("insert detalle_ventas", err)
	}
	return nil
}

// ListLinesByProduct devuelve las líneas del producto con fecha y cliente de su venta.
// Si la venta no existe, fecha y cliente quedan en nil.
func (r *SaleRepo) ListLinesByProduct(ctx context.Context, productID int64) ([]entity.SaleLineRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT d.id, d.venta_id, d.producto_id, d.cantidad, d.precio_unitario, v.fecha, v.cliente_nombre
		FROM detalle_ventas d
		LEFT JOIN ventas v ON v.id = d.venta_id
		WHERE d.producto_id = $1
		ORDER BY d.id`, productID)
	if err != nil {
		return nil, readErr(entity.RelationSaleLines, "list detalle_ventas", err)
	}
	defer rows.Close()
	list := make([]entity.SaleLineRow, 0)
	for rows.Next() {
		var row entity.SaleLineRow
		if err := rows.Scan(&row.ID, &row.SaleID, &row.ProductID, &row.Quantity, &row.UnitPrice,
			&row.SaleDate, &row.CustomerName); err != nil {
			return nil, readErr(entity.RelationSaleLines, "scan detalle_venta", err)
		}
		row.SaleDate = inUTCPtr(row.SaleDate)
		list = append(list, row)
	}
	if err := rows.Err(); err != nil {
		return nil, readErr(entity.RelationSaleLines, "list detalle_ventas", err)
	}
	return list, nil
}

// ListLines devuelve todas las líneas de venta.
func (r *SaleRepo) ListLines(ctx context.Context) ([]entity.SaleLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, venta_id, producto_id, cantidad, precio_unitario
		FROM detalle_ventas
		ORDER BY id`)
	if err != nil {
		return nil, readErr(entity.RelationSaleLines, "list detalle_ventas", err)
	}
	defer rows.Close()
	list := make([]entity.SaleLine, 0)
	for rows.Next() {
		var l entity.SaleLine
		if err := rows.Scan(&l.ID, &l.SaleID, &l.ProductID, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, readErr(entity.RelationSaleLines, "scan detalle_venta", err)
		}
		list = append(list, l)
	}
	if err := rows.Err(); err != nil {
		return nil, readErr(entity.RelationSaleLines, "list detalle_ventas", err)
	}
	return list, nil
}

// ListSince devuelve las ventas con fecha >= since y sus líneas (una sola consulta con LEFT JOIN).
func (r *SaleRepo) ListSince(ctx context.Context, since time.Time) ([]entity.SaleWithLines, error) {
	rows, err := r.q.Query(ctx, `
		SELECT v.id, COALESCE(v.cliente_nombre, ''), v.total, v.fecha,
		       d.id, d.producto_id, d.cantidad, d.precio_unitario
		FROM ventas v
		LEFT JOIN detalle_ventas d ON d.venta_id = v.id
		WHERE v.fecha >= $1
		ORDER BY v.fecha, v.id, d.id`, since)
	if err != nil {
		return nil, readErr(entity.RelationSales, "list ventas desde", err)
	}
	defer rows.Close()

	list := make([]entity.SaleWithLines, 0)
	for rows.Next() {
		var (
			s         entity.Sale
			lineID    *int64
			productID *int64
			qty       decimal.NullDecimal
			price     decimal.NullDecimal
		)
		if err := rows.Scan(&s.ID, &s.CustomerName, &s.Total, &s.Date, &lineID, &productID, &qty, &price); err != nil {
			return nil, readErr(entity.RelationSales, "scan venta", err)
		}
		s.Date = inUTC(s.Date)
		if n := len(list); n == 0 || list[n-1].ID != s.ID {
			list = append(list, entity.SaleWithLines{Sale: s, Lines: make([]entity.SaleLine, 0, 1)})
		}
		if lineID == nil {
			continue
		}
		cur := &list[len(list)-1]
		cur.Lines = append(cur.Lines, entity.SaleLine{
			ID:        *lineID,
			SaleID:    s.ID,
			ProductID: *productID,
			Quantity:  qty.Decimal,
			UnitPrice: price.Decimal,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, readErr(entity.RelationSales, "list ventas desde", err)
	}
	return list, nil
}
