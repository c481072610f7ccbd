package inventory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/ledger"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
	"github.com/jhoicas/tienda-inventario/pkg/formato"
)

// LedgerUseCase arma el kardex de un producto: une entradas y ventas, agrupa por día
// y guarda el resultado en la caché de la sesión.
type LedgerUseCase struct {
	productRepo repository.ProductRepository
	receiptRepo repository.ReceiptRepository
	saleRepo    repository.SaleRepository
	cache       *SessionCache
	pdf         KardexPDFGenerator
	log         zerolog.Logger
}

// NewLedgerUseCase construye el caso de uso. pdf puede ser nil si no se exporta.
func NewLedgerUseCase(
	productRepo repository.ProductRepository,
	receiptRepo repository.ReceiptRepository,
	saleRepo repository.SaleRepository,
	cache *SessionCache,
	pdf KardexPDFGenerator,
	log zerolog.Logger,
) *LedgerUseCase {
	return &LedgerUseCase{
		productRepo: productRepo,
		receiptRepo: receiptRepo,
		saleRepo:    saleRepo,
		cache:       cache,
		pdf:         pdf,
		log:         log,
	}
}

// ProductMovements lee entradas y líneas de venta del producto en paralelo y las
// normaliza. Si alguna lectura falla no se devuelven datos parciales.
func (uc *LedgerUseCase) ProductMovements(ctx context.Context, productID int64) ([]ledger.Movement, error) {
	type receiptsResult struct {
		rows []entity.ReceiptRow
		err  error
	}
	type linesResult struct {
		rows []entity.SaleLineRow
		err  error
	}

	recCh := make(chan receiptsResult, 1)
	linCh := make(chan linesResult, 1)

	go func() {
		rows, err := uc.receiptRepo.ListByProduct(ctx, productID)
		recCh <- receiptsResult{rows, err}
	}()
	go func() {
		rows, err := uc.saleRepo.ListLinesByProduct(ctx, productID)
		linCh <- linesResult{rows, err}
	}()

	rec := <-recCh
	lin := <-linCh

	if rec.err != nil {
		return nil, fmt.Errorf("kardex: entradas: %w", domain.NewDataFetchError(entity.RelationReceipts, rec.err))
	}
	if lin.err != nil {
		return nil, fmt.Errorf("kardex: ventas: %w", domain.NewDataFetchError(entity.RelationSaleLines, lin.err))
	}

	movs := ledger.Normalize(rec.rows, lin.rows)
	if n := ledger.CountUnresolved(movs); n > 0 {
		uc.log.Warn().Int64("product_id", productID).Int("lineas", n).
			Msg("líneas de venta sin venta asociada; se usa cliente sustituto")
	}
	return movs, nil
}

// ProductLedger devuelve el kardex agrupado por día. La primera apertura de un producto
// en la sesión consulta la base; las siguientes se sirven desde la caché.
func (uc *LedgerUseCase) ProductLedger(ctx context.Context, session entity.Session, productID int64) (*dto.ProductLedgerResponse, error) {
	product, groups, cached, err := uc.load(ctx, session, productID)
	if err != nil {
		return nil, err
	}
	return &dto.ProductLedgerResponse{
		ProductID:    product.ID,
		ProductName:  product.Name,
		CurrentStock: product.CurrentStock,
		Days:         toDayGroupDTOs(groups),
		Cached:       cached,
	}, nil
}

// KardexPDF renderiza el kardex del producto.
func (uc *LedgerUseCase) KardexPDF(ctx context.Context, session entity.Session, productID int64) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("kardex: generador PDF no configurado")
	}
	product, groups, _, err := uc.load(ctx, session, productID)
	if err != nil {
		return nil, err
	}
	out, err := uc.pdf.Generate(KardexDocument{Product: toProductResponse(product), Days: groups})
	if err != nil {
		return nil, fmt.Errorf("kardex: pdf: %w", err)
	}
	return out, nil
}

// CloseSession descarta los kardex en caché del usuario (el usuario salió del inventario).
func (uc *LedgerUseCase) CloseSession(session entity.Session) (int, error) {
	if session.IsZero() {
		return 0, domain.ErrUnauthorized
	}
	return uc.cache.InvalidateSession(session.UserID), nil
}

func (uc *LedgerUseCase) load(ctx context.Context, session entity.Session, productID int64) (*entity.Product, []ledger.DayGroup, bool, error) {
	if session.IsZero() {
		return nil, nil, false, domain.ErrUnauthorized
	}
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, nil, false, fmt.Errorf("kardex: producto: %w", domain.NewDataFetchError(entity.RelationProducts, err))
	}
	if product == nil {
		return nil, nil, false, domain.ErrNotFound
	}

	if groups, ok := uc.cache.Get(session.UserID, productID); ok {
		uc.log.Debug().Int64("product_id", productID).Str("user_id", session.UserID.String()).Msg("kardex desde caché")
		return product, groups, true, nil
	}

	gen := uc.cache.Generation(productID)
	movs, err := uc.ProductMovements(ctx, productID)
	if err != nil {
		return nil, nil, false, err
	}
	groups := ledger.GroupByDay(movs)
	if !uc.cache.PutIfCurrent(session.UserID, productID, gen, groups) {
		// se registró un movimiento del producto durante la lectura
		uc.log.Debug().Int64("product_id", productID).Msg("kardex obsoleto, no se guarda en caché")
	}
	return product, groups, false, nil
}

func toDayGroupDTOs(groups []ledger.DayGroup) []dto.DayGroupDTO {
	out := make([]dto.DayGroupDTO, 0, len(groups))
	for _, g := range groups {
		movs := make([]dto.MovementDTO, 0, len(g.Movements))
		for _, m := range g.Movements {
			movs = append(movs, toMovementDTO(m))
		}
		label := formato.LongDate(g.Date)
		if g.Date.IsZero() {
			label = "Sin fecha"
		}
		out = append(out, dto.DayGroupDTO{
			Key:           g.Key,
			Label:         label,
			TotalSales:    dto.Money(g.TotalSales),
			TotalReceipts: dto.Money(g.TotalReceipts),
			Movements:     movs,
		})
	}
	return out
}

func toMovementDTO(m ledger.Movement) dto.MovementDTO {
	out := dto.MovementDTO{
		ID:          m.ID,
		Kind:        string(m.Kind),
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
		Total:       dto.Money(m.Total),
		Counterpart: m.Counterpart,
		Notes:       m.Notes,
		Unresolved:  m.Unresolved,
	}
	if !m.Date.IsZero() {
		date := m.Date
		out.Date = &date
		out.Hour = formato.Hour(m.Date)
	}
	return out
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		CategoryID:   p.CategoryID,
		CurrentStock: p.CurrentStock,
	}
}
