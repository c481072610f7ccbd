package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/ledger"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
)

// CatalogUseCase casos de uso de categorías, productos y proveedores, más el listado
// de inventario con el total histórico de ventas de cada producto.
type CatalogUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	saleRepo     repository.SaleRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	saleRepo repository.SaleRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		saleRepo:     saleRepo,
	}
}

// CreateCategory crea una categoría. El nombre es obligatorio.
func (uc *CatalogUseCase) CreateCategory(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre obligatorio", domain.ErrInvalidInput)
	}
	c := &entity.Category{Name: name, Description: strings.TrimSpace(in.Description)}
	if err := uc.categoryRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("catalogo.CreateCategory: %w", err)
	}
	return toCategoryResponse(c), nil
}

// ListCategories lista las categorías por nombre.
func (uc *CatalogUseCase) ListCategories(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalogo.ListCategories: %w", err)
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// CreateProduct crea un producto en una categoría existente. El stock inicia en 0.
func (uc *CatalogUseCase) CreateProduct(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: nombre obligatorio", domain.ErrInvalidInput)
	}
	if in.CategoryID <= 0 {
		return nil, fmt.Errorf("%w: categoría obligatoria", domain.ErrInvalidInput)
	}
	category, err := uc.categoryRepo.GetByID(ctx, in.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("catalogo.CreateProduct: %w", err)
	}
	if category == nil {
		return nil, fmt.Errorf("%w: categoría %d", domain.ErrNotFound, in.CategoryID)
	}

	categoryID := in.CategoryID
	p := &entity.Product{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		CategoryID:  &categoryID,
	}
	if err := uc.productRepo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("catalogo.CreateProduct: %w", err)
	}
	return toProductResponse(p), nil
}

// ListProducts lista el catálogo por nombre.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalogo.ListProducts: %w", err)
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// ListSuppliers lista los proveedores.
func (uc *CatalogUseCase) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	list, err := uc.supplierRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalogo.ListSuppliers: %w", err)
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SupplierResponse{ID: s.ID, Name: s.Name})
	}
	return out, nil
}

// InventoryOverview devuelve el catálogo (orden por nombre) con el total histórico de
// ventas de cada producto. search filtra por nombre sin distinguir mayúsculas.
func (uc *CatalogUseCase) InventoryOverview(ctx context.Context, search string) (*dto.InventoryOverviewResponse, error) {
	type productsResult struct {
		rows []*entity.Product
		err  error
	}
	type linesResult struct {
		rows []entity.SaleLine
		err  error
	}

	prodCh := make(chan productsResult, 1)
	linesCh := make(chan linesResult, 1)

	go func() {
		rows, err := uc.productRepo.List(ctx)
		prodCh <- productsResult{rows, err}
	}()
	go func() {
		rows, err := uc.saleRepo.ListLines(ctx)
		linesCh <- linesResult{rows, err}
	}()

	prod := <-prodCh
	lines := <-linesCh

	if prod.err != nil {
		return nil, fmt.Errorf("inventario: productos: %w", domain.NewDataFetchError(entity.RelationProducts, prod.err))
	}
	if lines.err != nil {
		return nil, fmt.Errorf("inventario: ventas: %w", domain.NewDataFetchError(entity.RelationSaleLines, lines.err))
	}

	search = strings.TrimSpace(search)
	fold := cases.Fold()
	needle := fold.String(search)

	totals := ledger.LifetimeSalesTotals(prod.rows, lines.rows)
	items := make([]dto.InventoryRowDTO, 0, len(totals))
	for _, t := range totals {
		if needle != "" && !strings.Contains(fold.String(t.Name), needle) {
			continue
		}
		items = append(items, dto.InventoryRowDTO{
			ProductID:    t.ProductID,
			Name:         t.Name,
			CurrentStock: t.CurrentStock,
			SalesTotal:   dto.Money(t.Total),
		})
	}
	return &dto.InventoryOverviewResponse{Search: search, Items: items}, nil
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CurrentStock: p.CurrentStock,
	}
}
