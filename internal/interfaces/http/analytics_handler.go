package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
)

// ChartsHandler gráficos del panel: ranking y consolidados mensual y diario.
type ChartsHandler struct {
	uc ChartsService
}

// NewChartsHandler construye el handler.
func NewChartsHandler(uc ChartsService) *ChartsHandler {
	return &ChartsHandler{uc: uc}
}

// TopProducts godoc
// @Summary      Productos más vendidos
// @Tags         graficos
// @Security     Bearer
// @Produce      json
// @Param        n    query  int  false  "Cantidad de productos"  default(5)
// @Success      200  {array}   dto.TopProductDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/graficos/top [get]
func (h *ChartsHandler) TopProducts(c *fiber.Ctx) error {
	var q dto.TopProductsRequest
	if err := parseQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.TopProducts(c.Context(), q.N)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Monthly godoc
// @Summary      Ventas y compras por mes
// @Tags         graficos
// @Security     Bearer
// @Produce      json
// @Param        meses  query  int  false  "Meses hacia atrás"  default(6)
// @Success      200  {array}   dto.MonthBucketDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/graficos/mensual [get]
func (h *ChartsHandler) Monthly(c *fiber.Ctx) error {
	var q dto.MonthlyRequest
	if err := parseQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Monthly(c.Context(), q.Months)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Daily godoc
// @Summary      Cantidades recibidas y vendidas por día
// @Tags         graficos
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "Días hacia atrás"  default(30)
// @Success      200  {array}   dto.DayBucketDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/graficos/diario [get]
func (h *ChartsHandler) Daily(c *fiber.Ctx) error {
	var q dto.DailyRequest
	if err := parseQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.Daily(c.Context(), q.Days)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Los tres gráficos con sus valores por defecto
// @Tags         graficos
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ChartsSummaryDTO
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/graficos/resumen [get]
func (h *ChartsHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar consolidados a Excel
// @Tags         graficos
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        meses  query  int  false  "Meses hacia atrás"
// @Param        dias   query  int  false  "Días hacia atrás"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/graficos/export.xlsx [get]
func (h *ChartsHandler) Export(c *fiber.Ctx) error {
	var q dto.ExportRequest
	if err := parseQuery(c, &q); err != nil {
		return handleError(c, err)
	}
	out, err := h.uc.ExportWorkbook(c.Context(), q.Months, q.Days)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="graficos.xlsx"`)
	return c.Send(out)
}
