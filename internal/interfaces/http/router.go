package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-inventario/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName     string
	AuthUC      AuthService
	CatalogUC   CatalogService
	ReceiptUC   ReceiptService
	SaleUC      SaleService
	LedgerUC    LedgerService
	ChartsUC    ChartsService
	JWTSecret   string
	JWTAudience string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/registro", authHandler.Register)

	// Rutas protegidas: token de usuario de Supabase (rol authenticated, no la anon key)
	protected := api.Group("",
		AuthMiddleware(deps.JWTSecret, deps.JWTAudience),
		RequireRole(jwt.RoleAuthenticated),
	)

	protected.Get("/auth/sesion", authHandler.Session)

	// Catálogo
	catalog := NewCatalogHandler(deps.CatalogUC)
	protected.Get("/categorias", catalog.ListCategories)
	protected.Post("/categorias", catalog.CreateCategory)
	protected.Get("/productos", catalog.ListProducts)
	protected.Post("/productos", catalog.CreateProduct)
	protected.Get("/proveedores", catalog.ListSuppliers)

	// Movimientos
	inventory := NewInventoryHandler(deps.LedgerUC, deps.ReceiptUC)
	protected.Post("/entradas", inventory.RegisterReceipt)
	protected.Post("/ventas", NewSaleHandler(deps.SaleUC).Register)

	// Inventario y libro por producto
	inv := protected.Group("/inventario")
	inv.Get("/", catalog.Overview)
	inv.Get("/productos/:id/movimientos", inventory.Movements)
	inv.Get("/productos/:id/kardex.pdf", inventory.KardexPDF)
	inv.Delete("/cache", inventory.CloseSession)

	// Gráficos
	charts := NewChartsHandler(deps.ChartsUC)
	g := protected.Group("/graficos")
	g.Get("/top", charts.TopProducts)
	g.Get("/mensual", charts.Monthly)
	g.Get("/diario", charts.Daily)
	g.Get("/resumen", charts.Summary)
	g.Get("/export.xlsx", charts.Export)
}
