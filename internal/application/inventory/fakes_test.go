package inventory_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	"github.com/jhoicas/tienda-inventario/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

var errRemote = errors.New("connection reset by peer")

type fakeProducts struct {
	items map[int64]*entity.Product
	err   error
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error {
	p.ID = int64(len(f.items) + 1)
	f.items[p.ID] = p
	return nil
}

func (f *fakeProducts) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items[id], nil
}

func (f *fakeProducts) List(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.items))
	for _, p := range f.items {
		out = append(out, p)
	}
	return out, f.err
}

type fakeSuppliers struct {
	items map[int64]*entity.Supplier
}

func (f *fakeSuppliers) Create(_ context.Context, s *entity.Supplier) error {
	s.ID = int64(len(f.items) + 1)
	f.items[s.ID] = s
	return nil
}

func (f *fakeSuppliers) GetByID(_ context.Context, id int64) (*entity.Supplier, error) {
	return f.items[id], nil
}

func (f *fakeSuppliers) List(context.Context) ([]*entity.Supplier, error) { return nil, nil }

type fakeReceipts struct {
	mu      sync.Mutex
	rows    []entity.ReceiptRow
	err     error
	created []*entity.Receipt
	calls   int
}

func (f *fakeReceipts) Create(_ context.Context, r *entity.Receipt) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = int64(len(f.created) + 100)
	r.Date = time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)
	f.created = append(f.created, r)
	f.rows = append(f.rows, entity.ReceiptRow{Receipt: *r})
	return nil
}

func (f *fakeReceipts) ListByProduct(_ context.Context, productID int64) ([]entity.ReceiptRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.ReceiptRow
	for _, r := range f.rows {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeReceipts) ListSince(context.Context, time.Time) ([]entity.Receipt, error) {
	return nil, f.err
}

// gatedReceipts toma la foto de las entradas y se detiene hasta que el test la libera.
// Solo la primera lectura se detiene.
type gatedReceipts struct {
	*fakeReceipts
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func newGatedReceipts(inner *fakeReceipts) *gatedReceipts {
	return &gatedReceipts{fakeReceipts: inner, started: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedReceipts) ListByProduct(ctx context.Context, productID int64) ([]entity.ReceiptRow, error) {
	rows, err := g.fakeReceipts.ListByProduct(ctx, productID)
	g.once.Do(func() {
		close(g.started)
		<-g.release
	})
	return rows, err
}

type fakeSales struct {
	mu         sync.Mutex
	lines      []entity.SaleLineRow
	err        error
	lineErr    error
	sales      []*entity.Sale
	savedLines []entity.SaleLine
}

func (f *fakeSales) Create(_ context.Context, s *entity.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s.ID = int64(len(f.sales) + 1)
	s.Date = time.Date(2026, time.January, 6, 12, 0, 0, 0, time.UTC)
	f.sales = append(f.sales, s)
	return nil
}

func (f *fakeSales) CreateLines(_ context.Context, lines []entity.SaleLine) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lineErr != nil {
		return f.lineErr
	}
	for i := range lines {
		lines[i].ID = int64(len(f.savedLines) + 1)
		f.savedLines = append(f.savedLines, lines[i])
	}
	return nil
}

func (f *fakeSales) ListLinesByProduct(_ context.Context, productID int64) ([]entity.SaleLineRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.SaleLineRow
	for _, l := range f.lines {
		if l.ProductID == productID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeSales) ListLines(context.Context) ([]entity.SaleLine, error) { return nil, f.err }

func (f *fakeSales) ListSince(context.Context, time.Time) ([]entity.SaleWithLines, error) {
	return nil, f.err
}

// fakeTx simula la transacción: si fn falla se descartan cabecera y líneas.
type fakeTx struct {
	sales *fakeSales
}

func (t *fakeTx) RunSale(ctx context.Context, fn func(saleRepo repository.SaleRepository) error) error {
	t.sales.mu.Lock()
	salesBefore, linesBefore := len(t.sales.sales), len(t.sales.savedLines)
	t.sales.mu.Unlock()

	if err := fn(t.sales); err != nil {
		t.sales.mu.Lock()
		t.sales.sales = t.sales.sales[:salesBefore]
		t.sales.savedLines = t.sales.savedLines[:linesBefore]
		t.sales.mu.Unlock()
		return err
	}
	return nil
}

var (
	_ repository.ProductRepository  = (*fakeProducts)(nil)
	_ repository.SupplierRepository = (*fakeSuppliers)(nil)
	_ repository.ReceiptRepository  = (*fakeReceipts)(nil)
	_ repository.SaleRepository     = (*fakeSales)(nil)
)
