package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
)

// InventoryHandler libro de movimientos por producto y registro de entradas.
type InventoryHandler struct {
	ledger   LedgerService
	receipts ReceiptService
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(ledger LedgerService, receipts ReceiptService) *InventoryHandler {
	return &InventoryHandler{ledger: ledger, receipts: receipts}
}

// RegisterReceipt godoc
// @Summary      Registrar entrada de inventario
// @Description  tipo_cantidad "bolsitas" calcula la cantidad como num_bolsitas × peso_bolsa
//
//	e ignora "cantidad".
//
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterReceiptRequest  true  "Entrada"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/entradas [post]
func (h *InventoryHandler) RegisterReceipt(c *fiber.Ctx) error {
	var in dto.RegisterReceiptRequest
	if err := parseBody(c, &in); err != nil {
		return handleError(c, err)
	}
	out, err := h.receipts.Register(c.Context(), in)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Movements godoc
// @Summary      Movimientos de un producto agrupados por día
// @Description  Entradas y ventas del producto, del día más reciente al más antiguo.
//
//	El resultado queda en caché para la sesión hasta que se cierre o se
//	registre un movimiento del producto.
//
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductLedgerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventario/productos/{id}/movimientos [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.ledger.ProductLedger(c.Context(), GetSession(c), id)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(out)
}

// KardexPDF godoc
// @Summary      Kardex del producto en PDF
// @Tags         inventario
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/inventario/productos/{id}/kardex.pdf [get]
func (h *InventoryHandler) KardexPDF(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return handleError(c, err)
	}
	out, err := h.ledger.KardexPDF(c.Context(), GetSession(c), id)
	if err != nil {
		return handleError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="kardex-%d.pdf"`, id))
	return c.Send(out)
}

// CloseSession godoc
// @Summary      Descartar el caché de movimientos de la sesión
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/inventario/cache [delete]
func (h *InventoryHandler) CloseSession(c *fiber.Ctx) error {
	n, err := h.ledger.CloseSession(GetSession(c))
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{"descartados": n})
}
