package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-inventario/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Requiere TEST_DATABASE_URL apuntando a una base desechable; si no, se omite.
// ──────────────────────────────────────────────────────────────────────────────

func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, postgres.Migrate(ctx, pool))
	_, err = pool.Exec(ctx, `TRUNCATE detalle_ventas, ventas, entradas_inventario, productos, proveedores, categorias RESTART IDENTITY`)
	require.NoError(t, err)
	return pool
}

func TestRepositorios_KardexYStock(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	categories := postgres.NewCategoryRepository(pool)
	products := postgres.NewProductRepository(pool)
	suppliers := postgres.NewSupplierRepository(pool)
	receipts := postgres.NewReceiptRepository(pool)
	sales := postgres.NewSaleRepository(pool)

	cat := &entity.Category{Name: "Frutos secos"}
	require.NoError(t, categories.Create(ctx, cat))
	prod := &entity.Product{Name: "Maní", CategoryID: &cat.ID}
	require.NoError(t, products.Create(ctx, prod))
	sup := &entity.Supplier{Name: "Molino Sur"}
	require.NoError(t, suppliers.Create(ctx, sup))

	require.NoError(t, receipts.Create(ctx, &entity.Receipt{
		ProductID: prod.ID, SupplierID: &sup.ID, Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(2),
	}))

	runner := postgres.NewTxRunner(pool)
	sale := &entity.Sale{CustomerName: "Juana", Total: decimal.NewFromInt(15)}
	err := runner.RunSale(ctx, func(repo repository.SaleRepository) error {
		if err := repo.Create(ctx, sale); err != nil {
			return err
		}
		return repo.CreateLines(ctx, []entity.SaleLine{{
			SaleID: sale.ID, ProductID: prod.ID, Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(5),
		}})
	})
	require.NoError(t, err)

	got, err := products.GetByID(ctx, prod.ID)
	require.NoError(t, err)
	assert.True(t, got.CurrentStock.Equal(decimal.NewFromInt(7)), "stock = 10 - 3")

	rows, err := receipts.ListByProduct(ctx, prod.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].SupplierName)
	assert.Equal(t, "Molino Sur", *rows[0].SupplierName)

	lines, err := sales.ListLinesByProduct(ctx, prod.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	require.NotNil(t, lines[0].CustomerName)
	assert.Equal(t, "Juana", *lines[0].CustomerName)

	withLines, err := sales.ListSince(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	require.Len(t, withLines, 1)
	assert.Len(t, withLines[0].Lines, 1)

	missing, err := products.GetByID(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTxRunner_RollbackSinCabecera(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()

	runner := postgres.NewTxRunner(pool)
	err := runner.RunSale(ctx, func(repo repository.SaleRepository) error {
		sale := &entity.Sale{Total: decimal.NewFromInt(1)}
		if err := repo.Create(ctx, sale); err != nil {
			return err
		}
		// producto inexistente: viola la FK y aborta la tx
		return repo.CreateLines(ctx, []entity.SaleLine{{SaleID: sale.ID, ProductID: 424242, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)}})
	})
	require.Error(t, err)

	list, err := postgres.NewSaleRepository(pool).ListSince(ctx, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, list)
}
