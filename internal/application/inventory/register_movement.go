package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/inventory"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
)

// RegisterReceiptUseCase registra entradas de inventario (compras a proveedores).
type RegisterReceiptUseCase struct {
	receiptRepo  repository.ReceiptRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	invalidator  LedgerInvalidator
	log          zerolog.Logger
}

// NewRegisterReceiptUseCase construye el caso de uso.
func NewRegisterReceiptUseCase(
	receiptRepo repository.ReceiptRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	invalidator LedgerInvalidator,
	log zerolog.Logger,
) *RegisterReceiptUseCase {
	return &RegisterReceiptUseCase{
		receiptRepo:  receiptRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		invalidator:  invalidator,
		log:          log,
	}
}

// Register valida y persiste una entrada. La cantidad se guarda siempre en kilogramos.
func (uc *RegisterReceiptUseCase) Register(ctx context.Context, in dto.RegisterReceiptRequest) (*dto.ReceiptResponse, error) {
	qty, err := inventory.ResolveReceiptQuantity(inventory.QuantityMode(in.QuantityMode), in.Quantity, in.Bags, in.WeightPerBag)
	if err != nil {
		return nil, err
	}
	if !qty.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor a 0", domain.ErrInvalidInput)
	}
	if !in.UnitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: el precio unitario debe ser mayor a 0", domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, fmt.Errorf("entradas: producto: %w", err)
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, in.ProductID)
	}
	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(ctx, *in.SupplierID)
		if err != nil {
			return nil, fmt.Errorf("entradas: proveedor: %w", err)
		}
		if supplier == nil {
			return nil, fmt.Errorf("%w: proveedor %d", domain.ErrNotFound, *in.SupplierID)
		}
	}

	receipt := &entity.Receipt{
		ProductID:  in.ProductID,
		SupplierID: in.SupplierID,
		Quantity:   qty,
		UnitPrice:  in.UnitPrice,
		Notes:      strings.TrimSpace(in.Notes),
	}
	if err := uc.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, fmt.Errorf("entradas: crear: %w", err)
	}
	if n := uc.invalidator.InvalidateProduct(receipt.ProductID); n > 0 {
		uc.log.Debug().Int64("product_id", receipt.ProductID).Int("kardex", n).Msg("caché invalidada por entrada")
	}

	return &dto.ReceiptResponse{
		ID:         receipt.ID,
		ProductID:  receipt.ProductID,
		SupplierID: receipt.SupplierID,
		Quantity:   receipt.Quantity,
		UnitPrice:  receipt.UnitPrice,
		Date:       receipt.Date,
		Notes:      receipt.Notes,
	}, nil
}

// RegisterSaleUseCase registra ventas con su detalle en una sola transacción.
type RegisterSaleUseCase struct {
	txRunner    SaleTxRunner
	productRepo repository.ProductRepository
	invalidator LedgerInvalidator
	log         zerolog.Logger
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(
	txRunner SaleTxRunner,
	productRepo repository.ProductRepository,
	invalidator LedgerInvalidator,
	log zerolog.Logger,
) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		invalidator: invalidator,
		log:         log,
	}
}

// Register valida los ítems, calcula el total (Σ subtotales, 2 decimales) e inserta
// cabecera y líneas. Si falla la inserción de las líneas no queda la cabecera.
func (uc *RegisterSaleUseCase) Register(ctx context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptySale
	}

	items := make([]inventory.SaleItem, 0, len(in.Items))
	seen := make(map[int64]bool, len(in.Items))
	for i, it := range in.Items {
		if !it.Quantity.IsPositive() {
			return nil, fmt.Errorf("%w: ítem %d: la cantidad debe ser mayor a 0", domain.ErrInvalidInput, i+1)
		}
		if it.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: ítem %d: el precio no puede ser negativo", domain.ErrInvalidInput, i+1)
		}
		if !seen[it.ProductID] {
			product, err := uc.productRepo.GetByID(ctx, it.ProductID)
			if err != nil {
				return nil, fmt.Errorf("ventas: producto: %w", err)
			}
			if product == nil {
				return nil, fmt.Errorf("%w: producto %d", domain.ErrNotFound, it.ProductID)
			}
			seen[it.ProductID] = true
		}
		items = append(items, inventory.SaleItem{Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}

	total := inventory.SaleTotal(items)
	if !total.IsPositive() {
		return nil, domain.ErrZeroTotal
	}

	sale := &entity.Sale{
		CustomerName: strings.TrimSpace(in.CustomerName),
		Total:        total,
	}
	lines := make([]entity.SaleLine, len(in.Items))

	err := uc.txRunner.RunSale(ctx, func(saleRepo repository.SaleRepository) error {
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		for i, it := range in.Items {
			lines[i] = entity.SaleLine{
				SaleID:    sale.ID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
			}
		}
		return saleRepo.CreateLines(ctx, lines)
	})
	if err != nil {
		return nil, fmt.Errorf("ventas: registrar: %w", err)
	}

	for productID := range seen {
		uc.invalidator.InvalidateProduct(productID)
	}
	uc.log.Info().Int64("sale_id", sale.ID).Str("total", total.StringFixed(2)).Int("items", len(lines)).Msg("venta registrada")

	resp := &dto.SaleResponse{
		ID:           sale.ID,
		CustomerName: sale.CustomerName,
		Total:        dto.Money(sale.Total),
		Date:         sale.Date,
		Lines:        make([]dto.SaleLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.SaleLineResponse{
			ID:        l.ID,
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Subtotal:  inventory.LineSubtotal(l.Quantity, l.UnitPrice),
		})
	}
	return resp, nil
}
