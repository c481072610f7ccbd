package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
)

// CatalogHandler categorías, productos, proveedores y el resumen de inventario.
type CatalogHandler struct {
	uc CatalogService
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc CatalogService) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateCategory godoc
// @Summary      Crear categoría
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "nombre, descripcion"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categorias [post]
func (h *CatalogHandler) CreateCategory(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.CreateCategory(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCategories godoc
// @Summary      Listar categorías
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CategoryResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/categorias [get]
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	out, err := h.uc.ListCategories(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// CreateProduct godoc
// @Summary      Crear producto
// @Tags         catalogo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "nombre, descripcion, categoria_id"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *CatalogHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.CreateProduct(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ProductResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/productos [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         catalogo
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.SupplierResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/proveedores [get]
func (h *CatalogHandler) ListSuppliers(c *fiber.Ctx) error {
	out, err := h.uc.ListSuppliers(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Overview godoc
// @Summary      Resumen de inventario
// @Description  Productos ordenados por nombre con su stock y total histórico de ventas.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        busqueda  query  string  false  "Filtro por nombre (sin distinguir mayúsculas)"
// @Success      200  {object}  dto.InventoryOverviewResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventario [get]
func (h *CatalogHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.InventoryOverview(c.Context(), c.Query("busqueda"))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}
