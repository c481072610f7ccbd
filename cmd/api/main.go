package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-inventario/internal/application/analytics"
	"github.com/jhoicas/tienda-inventario/internal/application/auth"
	"github.com/jhoicas/tienda-inventario/internal/application/inventory"
	"github.com/jhoicas/tienda-inventario/internal/application/usecase"
	infrapdf "github.com/jhoicas/tienda-inventario/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/supabase"
	"github.com/jhoicas/tienda-inventario/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/tienda-inventario/internal/interfaces/http"
	"github.com/jhoicas/tienda-inventario/pkg/config"
	"github.com/jhoicas/tienda-inventario/pkg/formato"
	"github.com/jhoicas/tienda-inventario/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().Str("env", cfg.App.Env).Msg("iniciando aplicación")

	if err := formato.SetLocale(cfg.App.Locale); err != nil {
		log.Fatal().Err(err).Str("locale", cfg.App.Locale).Msg("configuración regional")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	receiptRepo := postgres.NewReceiptRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Caché de movimientos por sesión: se descarta al cerrar el panel o al registrar
	// un movimiento del producto.
	ledgerCache := inventory.NewSessionCache(cfg.Cache.Size, cfg.Cache.TTL)
	ledgerUC := inventory.NewLedgerUseCase(
		productRepo, receiptRepo, saleRepo, ledgerCache,
		infrapdf.NewKardexPDFGenerator(cfg.App.Name),
		log.Component("ledger"),
	)
	receiptUC := inventory.NewRegisterReceiptUseCase(receiptRepo, productRepo, supplierRepo, ledgerCache, log.Component("entradas"))
	saleUC := inventory.NewRegisterSaleUseCase(txRunner, productRepo, ledgerCache, log.Component("ventas"))

	catalogUC := usecase.NewCatalogUseCase(categoryRepo, productRepo, supplierRepo, saleRepo)
	chartsUC := analytics.NewChartsUseCase(productRepo, saleRepo, receiptRepo, xlsx.NewRollupSheetGenerator(), analytics.Defaults{
		TopN:   cfg.Charts.TopN,
		Months: cfg.Charts.RollupMonths,
		Days:   cfg.Charts.RollupDays,
	})
	authUC := auth.NewAuthUseCase(supabase.NewAuthClient(cfg.Supabase.URL, cfg.Supabase.AnonKey))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda Inventario API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:     cfg.App.Name,
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		ReceiptUC:   receiptUC,
		SaleUC:      saleUC,
		LedgerUC:    ledgerUC,
		ChartsUC:    chartsUC,
		JWTSecret:   cfg.Supabase.JWTSecret,
		JWTAudience: cfg.Supabase.JWTAudience,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
