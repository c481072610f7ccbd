package http

import (
	"context"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
)

// Contratos mínimos que consumen los handlers. Los implementan los casos de uso de
// internal/application; el router recibe las implementaciones concretas.

type AuthService interface {
	Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error)
	CurrentSession(session entity.Session) (*dto.SessionResponse, error)
}

type CatalogService interface {
	CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context) ([]dto.CategoryResponse, error)
	CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context) ([]dto.ProductResponse, error)
	ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error)
	InventoryOverview(ctx context.Context, search string) (*dto.InventoryOverviewResponse, error)
}

type ReceiptService interface {
	Register(ctx context.Context, in dto.RegisterReceiptRequest) (*dto.ReceiptResponse, error)
}

type SaleService interface {
	Register(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error)
}

type LedgerService interface {
	ProductLedger(ctx context.Context, session entity.Session, productID int64) (*dto.ProductLedgerResponse, error)
	KardexPDF(ctx context.Context, session entity.Session, productID int64) ([]byte, error)
	CloseSession(session entity.Session) (int, error)
}

type ChartsService interface {
	TopProducts(ctx context.Context, n int) ([]dto.TopProductDTO, error)
	Monthly(ctx context.Context, months int) ([]dto.MonthBucketDTO, error)
	Daily(ctx context.Context, days int) ([]dto.DayBucketDTO, error)
	Summary(ctx context.Context) (*dto.ChartsSummaryDTO, error)
	ExportWorkbook(ctx context.Context, months, days int) ([]byte, error)
}
