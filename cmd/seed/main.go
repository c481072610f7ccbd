// seed carga un catálogo de demostración con entradas y ventas de los últimos meses,
// usando los mismos repositorios que la API (los triggers mantienen el stock).
//
// Uso: go run ./cmd/seed [-meses 6] [-semilla 42]
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/inventory"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-inventario/pkg/config"
	"github.com/jhoicas/tienda-inventario/pkg/logger"
)

type demoProduct struct {
	name     string
	category string
	cost     int64 // por kg
	price    int64 // por kg
}

var (
	categories = []string{"Harinas", "Cereales", "Frutos secos"}
	suppliers  = []string{"Molino del Sur", "Distribuidora Andes", "Granos Maule"}
	customers  = []string{"", "Ana Rojas", "Pedro Soto", "Almacén La Esquina"}
	products   = []demoProduct{
		{"Harina integral", "Harinas", 900, 1400},
		{"Harina de garbanzo", "Harinas", 2100, 3200},
		{"Avena tradicional", "Cereales", 1100, 1800},
		{"Quínoa", "Cereales", 3500, 5200},
		{"Almendras", "Frutos secos", 9000, 13500},
		{"Nueces", "Frutos secos", 8000, 12000},
	}
)

func main() {
	months := flag.Int("meses", 6, "meses de historia a generar")
	seed := flag.Int64("semilla", 42, "semilla del generador aleatorio")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: "seed"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	s := &seeder{
		categories: postgres.NewCategoryRepository(pool),
		products:   postgres.NewProductRepository(pool),
		suppliers:  postgres.NewSupplierRepository(pool),
		receipts:   postgres.NewReceiptRepository(pool),
		tx:         postgres.NewTxRunner(pool),
		rnd:        rand.New(rand.NewSource(*seed)),
	}
	stats, err := s.run(ctx, time.Now(), *months)
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().
		Int("productos", stats.products).
		Int("entradas", stats.receipts).
		Int("ventas", stats.sales).
		Msg("datos de demostración cargados")
}

type seedStats struct {
	products, receipts, sales int
}

type seeder struct {
	categories repository.CategoryRepository
	products   repository.ProductRepository
	suppliers  repository.SupplierRepository
	receipts   repository.ReceiptRepository
	tx         *postgres.TxRunner
	rnd        *rand.Rand
}

func (s *seeder) run(ctx context.Context, now time.Time, months int) (seedStats, error) {
	var stats seedStats

	catIDs := make(map[string]int64, len(categories))
	for _, name := range categories {
		c := &entity.Category{Name: name}
		if err := s.categories.Create(ctx, c); err != nil {
			return stats, fmt.Errorf("categoría %s: %w", name, err)
		}
		catIDs[name] = c.ID
	}

	supIDs := make([]int64, 0, len(suppliers))
	for _, name := range suppliers {
		sp := &entity.Supplier{Name: name}
		if err := s.suppliers.Create(ctx, sp); err != nil {
			return stats, fmt.Errorf("proveedor %s: %w", name, err)
		}
		supIDs = append(supIDs, sp.ID)
	}

	prods := make([]*entity.Product, 0, len(products))
	for _, dp := range products {
		catID := catIDs[dp.category]
		p := &entity.Product{Name: dp.name, CategoryID: &catID}
		if err := s.products.Create(ctx, p); err != nil {
			return stats, fmt.Errorf("producto %s: %w", dp.name, err)
		}
		prods = append(prods, p)
	}
	stats.products = len(prods)

	start := now.AddDate(0, -months, 0)
	for day := start; day.Before(now); day = day.AddDate(0, 0, 1) {
		// Reposición semanal (los lunes), en bolsitas o a granel.
		if day.Weekday() == time.Monday {
			for i, p := range prods {
				if err := s.receipt(ctx, p.ID, supIDs[i%len(supIDs)], products[i].cost, day); err != nil {
					return stats, err
				}
				stats.receipts++
			}
		}
		// Entre 0 y 3 ventas por día.
		for n := s.rnd.Intn(4); n > 0; n-- {
			if err := s.sale(ctx, prods, day); err != nil {
				return stats, err
			}
			stats.sales++
		}
	}
	return stats, nil
}

func (s *seeder) receipt(ctx context.Context, productID, supplierID int64, cost int64, day time.Time) error {
	mode, qty, bags, weight := inventory.ModeKilograms, decimal.NewFromInt(int64(5+s.rnd.Intn(20))), decimal.Zero, decimal.Zero
	if s.rnd.Intn(2) == 0 {
		mode = inventory.ModeBags
		bags = decimal.NewFromInt(int64(10 + s.rnd.Intn(30)))
		weight = decimal.RequireFromString("0.5")
	}
	kg, err := inventory.ResolveReceiptQuantity(mode, qty, bags, weight)
	if err != nil {
		return err
	}
	notes := ""
	if mode == inventory.ModeBags {
		notes = fmt.Sprintf("%s bolsitas de %s kg", bags, weight)
	}
	r := &entity.Receipt{
		ProductID:  productID,
		SupplierID: &supplierID,
		Quantity:   kg,
		UnitPrice:  decimal.NewFromInt(cost),
		Date:       at(day, 9+s.rnd.Intn(3)),
		Notes:      notes,
	}
	if err := s.receipts.Create(ctx, r); err != nil {
		return fmt.Errorf("entrada producto %d: %w", productID, err)
	}
	return nil
}

func (s *seeder) sale(ctx context.Context, prods []*entity.Product, day time.Time) error {
	n := 1 + s.rnd.Intn(3)
	lines := make([]entity.SaleLine, 0, n)
	items := make([]inventory.SaleItem, 0, n)
	for _, idx := range s.rnd.Perm(len(prods))[:n] {
		qty := decimal.NewFromInt(int64(1 + s.rnd.Intn(8))).Div(decimal.NewFromInt(2)) // 0.5 a 4 kg
		price := decimal.NewFromInt(products[idx].price)
		lines = append(lines, entity.SaleLine{ProductID: prods[idx].ID, Quantity: qty, UnitPrice: price})
		items = append(items, inventory.SaleItem{Quantity: qty, UnitPrice: price})
	}
	sale := &entity.Sale{
		CustomerName: customers[s.rnd.Intn(len(customers))],
		Total:        inventory.SaleTotal(items),
		Date:         at(day, 10+s.rnd.Intn(9)),
	}
	return s.tx.RunSale(ctx, func(repo repository.SaleRepository) error {
		if err := repo.Create(ctx, sale); err != nil {
			return err
		}
		for i := range lines {
			lines[i].SaleID = sale.ID
		}
		return repo.CreateLines(ctx, lines)
	})
}

func at(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}
