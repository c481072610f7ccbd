// Package analytics contiene los casos de uso de los gráficos: ranking de productos
// más vendidos y consolidados mensual y diario.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/ledger"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
	"github.com/jhoicas/tienda-inventario/pkg/formato"
)

// Defaults valores por defecto cuando la petición no los indica.
type Defaults struct {
	TopN   int
	Months int
	Days   int
}

// RollupWorkbook datos para exportar los consolidados a planilla.
type RollupWorkbook struct {
	GeneratedAt time.Time
	Monthly     []ledger.MonthBucket
	Daily       []ledger.DayQuantityBucket
}

// RollupSheetGenerator puerto para exportar los consolidados (xlsx).
type RollupSheetGenerator interface {
	Generate(wb RollupWorkbook) ([]byte, error)
}

// ChartsUseCase orquesta las lecturas de los gráficos. Las fuentes se consultan en
// paralelo; si una falla, la respuesta completa falla con el DataFetchError de esa relación.
type ChartsUseCase struct {
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	receiptRepo repository.ReceiptRepository
	sheet       RollupSheetGenerator
	defaults    Defaults
	now         func() time.Time
}

// NewChartsUseCase construye el caso de uso. sheet puede ser nil si no se exporta.
func NewChartsUseCase(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	receiptRepo repository.ReceiptRepository,
	sheet RollupSheetGenerator,
	defaults Defaults,
) *ChartsUseCase {
	return &ChartsUseCase{
		productRepo: productRepo,
		saleRepo:    saleRepo,
		receiptRepo: receiptRepo,
		sheet:       sheet,
		defaults:    defaults,
		now:         time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *ChartsUseCase) WithClock(now func() time.Time) *ChartsUseCase {
	uc.now = now
	return uc
}

// TopProducts ranking de los n productos con mayor total histórico de ventas.
func (uc *ChartsUseCase) TopProducts(ctx context.Context, n int) ([]dto.TopProductDTO, error) {
	if n <= 0 {
		n = uc.defaults.TopN
	}

	var (
		products []*entity.Product
		lines    []entity.SaleLine
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = uc.productRepo.List(gctx)
		return domain.NewDataFetchError(entity.RelationProducts, err)
	})
	g.Go(func() error {
		var err error
		lines, err = uc.saleRepo.ListLines(gctx)
		return domain.NewDataFetchError(entity.RelationSaleLines, err)
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("graficos.TopProducts: %w", err)
	}

	top := ledger.TopN(ledger.LifetimeSalesTotals(products, lines), n)
	out := make([]dto.TopProductDTO, 0, len(top))
	for i, t := range top {
		out = append(out, dto.TopProductDTO{
			Rank:         i + 1,
			ProductID:    t.ProductID,
			Name:         t.Name,
			CurrentStock: t.CurrentStock,
			SalesTotal:   dto.Money(t.Total),
		})
	}
	return out, nil
}

// Monthly consolidado de ventas y compras por mes de los últimos months meses.
func (uc *ChartsUseCase) Monthly(ctx context.Context, months int) ([]dto.MonthBucketDTO, error) {
	if months <= 0 {
		months = uc.defaults.Months
	}
	since := ledger.LookbackMonths(uc.now().UTC(), months)
	sales, receipts, err := uc.fetchSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("graficos.Monthly: %w", err)
	}
	return toMonthDTOs(ledger.MonthlyRollup(sales, receipts, since)), nil
}

// Daily consolidado de cantidades recibidas y vendidas por día de los últimos days días.
func (uc *ChartsUseCase) Daily(ctx context.Context, days int) ([]dto.DayBucketDTO, error) {
	if days <= 0 {
		days = uc.defaults.Days
	}
	since := ledger.LookbackDays(uc.now().UTC(), days)
	sales, receipts, err := uc.fetchSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("graficos.Daily: %w", err)
	}
	return toDayDTOs(ledger.DailyRollup(sales, receipts, since)), nil
}

// Summary los tres gráficos con los valores por defecto, en paralelo.
func (uc *ChartsUseCase) Summary(ctx context.Context) (*dto.ChartsSummaryDTO, error) {
	var out dto.ChartsSummaryDTO
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		out.TopProducts, err = uc.TopProducts(gctx, 0)
		return err
	})
	g.Go(func() error {
		var err error
		out.Monthly, err = uc.Monthly(gctx, 0)
		return err
	})
	g.Go(func() error {
		var err error
		out.Daily, err = uc.Daily(gctx, 0)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportWorkbook genera la planilla con los consolidados mensual y diario.
func (uc *ChartsUseCase) ExportWorkbook(ctx context.Context, months, days int) ([]byte, error) {
	if uc.sheet == nil {
		return nil, fmt.Errorf("graficos: generador de planillas no configurado")
	}
	if months <= 0 {
		months = uc.defaults.Months
	}
	if days <= 0 {
		days = uc.defaults.Days
	}
	now := uc.now().UTC()
	monthSince := ledger.LookbackMonths(now, months)
	daySince := ledger.LookbackDays(now, days)
	since := monthSince
	if daySince.Before(since) {
		since = daySince
	}

	sales, receipts, err := uc.fetchSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("graficos.ExportWorkbook: %w", err)
	}
	return uc.sheet.Generate(RollupWorkbook{
		GeneratedAt: now,
		Monthly:     ledger.MonthlyRollup(sales, receipts, monthSince),
		Daily:       ledger.DailyRollup(sales, receipts, daySince),
	})
}

func (uc *ChartsUseCase) fetchSince(ctx context.Context, since time.Time) ([]entity.SaleWithLines, []entity.Receipt, error) {
	var (
		sales    []entity.SaleWithLines
		receipts []entity.Receipt
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = uc.saleRepo.ListSince(gctx, since)
		return domain.NewDataFetchError(entity.RelationSales, err)
	})
	g.Go(func() error {
		var err error
		receipts, err = uc.receiptRepo.ListSince(gctx, since)
		return domain.NewDataFetchError(entity.RelationReceipts, err)
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return sales, receipts, nil
}

func toMonthDTOs(buckets []ledger.MonthBucket) []dto.MonthBucketDTO {
	out := make([]dto.MonthBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.MonthBucketDTO{
			Key:           b.Key,
			Label:         b.Label,
			SalesTotal:    dto.Money(b.SalesTotal),
			ReceiptsTotal: dto.Money(b.ReceiptsTotal),
		})
	}
	return out
}

func toDayDTOs(buckets []ledger.DayQuantityBucket) []dto.DayBucketDTO {
	out := make([]dto.DayBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.DayBucketDTO{
			Key:      b.Key,
			Label:    formato.ShortDate(b.Date),
			Entradas: b.Entradas,
			Salidas:  b.Salidas,
		})
	}
	return out
}
