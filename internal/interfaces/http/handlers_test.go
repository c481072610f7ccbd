package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-inventario/internal/application/dto"
	"github.com/jhoicas/tienda-inventario/internal/domain"
	"github.com/jhoicas/tienda-inventario/internal/domain/entity"
	apphttp "github.com/jhoicas/tienda-inventario/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/tienda-inventario/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs de servicios
// ──────────────────────────────────────────────────────────────────────────────

type stubAuth struct {
	loginErr error
}

func (s *stubAuth) Login(_ context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.LoginResponse{AccessToken: "tok", User: dto.SessionResponse{Email: in.Email}}, nil
}

func (s *stubAuth) Register(_ context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	return &dto.RegisterResponse{Email: in.Email, ConfirmationSent: true}, nil
}

func (s *stubAuth) CurrentSession(session entity.Session) (*dto.SessionResponse, error) {
	return &dto.SessionResponse{UserID: session.UserID.String(), Email: session.Email, Role: session.Role}, nil
}

type stubCatalog struct {
	err        error
	lastSearch string
	created    *dto.CreateProductRequest
}

func (s *stubCatalog) CreateCategory(_ context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	return &dto.CategoryResponse{ID: 1, Name: in.Name}, s.err
}

func (s *stubCatalog) ListCategories(context.Context) ([]dto.CategoryResponse, error) {
	return []dto.CategoryResponse{}, s.err
}

func (s *stubCatalog) CreateProduct(_ context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = &in
	return &dto.ProductResponse{ID: 9, Name: in.Name, CategoryID: &in.CategoryID}, nil
}

func (s *stubCatalog) ListProducts(context.Context) ([]dto.ProductResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []dto.ProductResponse{{ID: 1, Name: "Harina"}}, nil
}

func (s *stubCatalog) ListSuppliers(context.Context) ([]dto.SupplierResponse, error) {
	return []dto.SupplierResponse{}, s.err
}

func (s *stubCatalog) InventoryOverview(_ context.Context, search string) (*dto.InventoryOverviewResponse, error) {
	s.lastSearch = search
	return &dto.InventoryOverviewResponse{Search: search, Items: []dto.InventoryRowDTO{}}, s.err
}

type stubReceipts struct{ err error }

func (s *stubReceipts) Register(_ context.Context, in dto.RegisterReceiptRequest) (*dto.ReceiptResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ReceiptResponse{ID: 3, ProductID: in.ProductID, Quantity: in.Quantity}, nil
}

type stubSales struct{ err error }

func (s *stubSales) Register(_ context.Context, in dto.RegisterSaleRequest) (*dto.SaleResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &dto.SaleResponse{ID: 4, CustomerName: in.CustomerName, Total: dto.Money(decimal.NewFromInt(1000))}, nil
}

type stubLedger struct {
	err         error
	lastSession entity.Session
	lastProduct int64
}

func (s *stubLedger) ProductLedger(_ context.Context, session entity.Session, productID int64) (*dto.ProductLedgerResponse, error) {
	s.lastSession, s.lastProduct = session, productID
	if s.err != nil {
		return nil, s.err
	}
	return &dto.ProductLedgerResponse{ProductID: productID, ProductName: "Harina", Days: []dto.DayGroupDTO{}}, nil
}

func (s *stubLedger) KardexPDF(_ context.Context, _ entity.Session, productID int64) ([]byte, error) {
	s.lastProduct = productID
	return []byte("%PDF-1.3 demo"), s.err
}

func (s *stubLedger) CloseSession(session entity.Session) (int, error) {
	s.lastSession = session
	return 2, s.err
}

type stubCharts struct {
	err        error
	lastN      int
	lastMonths int
	lastDays   int
}

func (s *stubCharts) TopProducts(_ context.Context, n int) ([]dto.TopProductDTO, error) {
	s.lastN = n
	return []dto.TopProductDTO{}, s.err
}

func (s *stubCharts) Monthly(_ context.Context, months int) ([]dto.MonthBucketDTO, error) {
	s.lastMonths = months
	return []dto.MonthBucketDTO{}, s.err
}

func (s *stubCharts) Daily(_ context.Context, days int) ([]dto.DayBucketDTO, error) {
	s.lastDays = days
	return []dto.DayBucketDTO{}, s.err
}

func (s *stubCharts) Summary(context.Context) (*dto.ChartsSummaryDTO, error) {
	return &dto.ChartsSummaryDTO{}, s.err
}

func (s *stubCharts) ExportWorkbook(_ context.Context, months, days int) ([]byte, error) {
	s.lastMonths, s.lastDays = months, days
	return []byte("PK"), s.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app      *fiber.App
	auth     *stubAuth
	catalog  *stubCatalog
	receipts *stubReceipts
	sales    *stubSales
	ledger   *stubLedger
	charts   *stubCharts
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		app:      fiber.New(),
		auth:     &stubAuth{},
		catalog:  &stubCatalog{},
		receipts: &stubReceipts{},
		sales:    &stubSales{},
		ledger:   &stubLedger{},
		charts:   &stubCharts{},
	}
	apphttp.Router(env.app, apphttp.RouterDeps{
		AppName:     "tienda-test",
		AuthUC:      env.auth,
		CatalogUC:   env.catalog,
		ReceiptUC:   env.receipts,
		SaleUC:      env.sales,
		LedgerUC:    env.ledger,
		ChartsUC:    env.charts,
		JWTSecret:   testJWTSecret,
		JWTAudience: pkgjwt.AudienceAuthenticated,
	})
	return env
}

// call lanza la petición con token de usuario autenticado (si auth es true).
func (e *testEnv) call(t *testing.T, method, path, body string, auth bool) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth {
		req.Header.Set("Authorization", tokenForRole(t, pkgjwt.RoleAuthenticated))
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas públicas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_Health(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthHandler_Login_OK(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodPost, "/api/auth/login", `{"email":"caja@tienda.cl","password":"secreto"}`, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "tok", out.AccessToken)
}

func TestAuthHandler_Login_CredencialesInvalidas(t *testing.T) {
	env := newTestEnv(t)
	env.auth.loginErr = domain.ErrUnauthorized
	resp := env.call(t, http.MethodPost, "/api/auth/login", `{"email":"caja@tienda.cl","password":"mal"}`, false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthHandler_Registro_EmailInvalido(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodPost, "/api/auth/registro", `{"email":"no-es-email","password":"123"}`, false)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	e := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Equal(t, "email", e.Fields["email"])
	assert.Equal(t, "min", e.Fields["password"])
}

func TestAuthHandler_Registro_CuerpoInvalido(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodPost, "/api/auth/registro", `{`, false)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rutas protegidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ProtegidasSinToken(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/api/productos", "/api/inventario", "/api/graficos/top", "/api/auth/sesion"} {
		resp := env.call(t, http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestAuthHandler_Sesion(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodGet, "/api/auth/sesion", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, testUserID.String(), out.UserID)
	assert.Equal(t, testEmail, out.Email)
}

func TestCatalogHandler_CrearProducto_SinCategoria(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodPost, "/api/productos", `{"nombre":"Harina"}`, true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	e := decodeError(t, resp)
	assert.Equal(t, "required", e.Fields["categoria_id"])
	assert.Nil(t, env.catalog.created, "no debe llegar al caso de uso")
}

func TestCatalogHandler_CrearProducto_CategoriaInexistente(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.err = domain.ErrNotFound
	resp := env.call(t, http.MethodPost, "/api/productos", `{"nombre":"Harina","categoria_id":99}`, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalogHandler_CrearProducto_OK(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodPost, "/api/productos", `{"nombre":"Harina","categoria_id":2}`, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, env.catalog.created)
	assert.Equal(t, int64(2), env.catalog.created.CategoryID)
}

func TestCatalogHandler_ListarProductos_FalloDeDatos(t *testing.T) {
	env := newTestEnv(t)
	env.catalog.err = domain.NewDataFetchError(entity.RelationProducts, errors.New("timeout"))
	resp := env.call(t, http.MethodGet, "/api/productos", "", true)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)

	e := decodeError(t, resp)
	assert.Equal(t, "DATA_FETCH", e.Code)
	assert.Equal(t, entity.RelationProducts, e.Relation)
}

func TestCatalogHandler_Inventario_Busqueda(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodGet, "/api/inventario?busqueda=hari", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hari", env.catalog.lastSearch)
}

func TestInventoryHandler_RegistrarEntrada_ModoInvalido(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodPost, "/api/entradas",
		`{"producto_id":1,"tipo_cantidad":"litros","cantidad":"2","precio_unitario":"100"}`, true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "oneof", decodeError(t, resp).Fields["tipo_cantidad"])
}

func TestInventoryHandler_RegistrarEntrada_OK(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodPost, "/api/entradas",
		`{"producto_id":1,"cantidad":"2.5","precio_unitario":"100"}`, true)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestSaleHandler_SinItems(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodPost, "/api/ventas", `{"cliente_nombre":"Ana","items":[]}`, true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "min", decodeError(t, resp).Fields["items"])
}

func TestSaleHandler_TotalCero(t *testing.T) {
	env := newTestEnv(t)
	env.sales.err = domain.ErrZeroTotal
	resp := env.call(t, http.MethodPost, "/api/ventas",
		`{"items":[{"producto_id":1,"cantidad":"1","precio_unitario":"0"}]}`, true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decodeError(t, resp).Code)
}

func TestSaleHandler_OK(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodPost, "/api/ventas",
		`{"cliente_nombre":"Ana","items":[{"producto_id":1,"cantidad":"2","precio_unitario":"500"}]}`, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.SaleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "Ana", out.CustomerName)
	assert.Equal(t, "$1.000", out.Total.Formatted)
}

func TestInventoryHandler_Movimientos_PasaSesion(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodGet, "/api/inventario/productos/7/movimientos", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(7), env.ledger.lastProduct)
	assert.Equal(t, testUserID, env.ledger.lastSession.UserID)
}

func TestInventoryHandler_Movimientos_IDInvalido(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodGet, "/api/inventario/productos/abc/movimientos", "", true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInventoryHandler_Movimientos_FalloVentas(t *testing.T) {
	env := newTestEnv(t)
	env.ledger.err = domain.NewDataFetchError(entity.RelationSaleLines, errors.New("permiso denegado"))
	resp := env.call(t, http.MethodGet, "/api/inventario/productos/7/movimientos", "", true)
	require.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, entity.RelationSaleLines, decodeError(t, resp).Relation)
}

func TestInventoryHandler_KardexPDF(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodGet, "/api/inventario/productos/3/kardex.pdf", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestInventoryHandler_CerrarSesion(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodDelete, "/api/inventario/cache", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 2, out["descartados"])
	assert.Equal(t, testUserID, env.ledger.lastSession.UserID)
}

func TestChartsHandler_Top_ParametroN(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodGet, "/api/graficos/top?n=3", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, env.charts.lastN)
}

func TestChartsHandler_Top_SinParametroUsaDefault(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodGet, "/api/graficos/top", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, env.charts.lastN, "0 delega el valor por defecto al caso de uso")
}

func TestChartsHandler_Mensual_FueraDeRango(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodGet, "/api/graficos/mensual?meses=999", "", true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "max", decodeError(t, resp).Fields["meses"])
}

func TestChartsHandler_Diario(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodGet, "/api/graficos/diario?dias=14", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 14, env.charts.lastDays)
}

func TestChartsHandler_Export(t *testing.T) {
	env := newTestEnv(t)
	resp := env.call(t, http.MethodGet, "/api/graficos/export.xlsx?meses=3&dias=10", "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "graficos.xlsx")
	assert.Equal(t, 3, env.charts.lastMonths)
	assert.Equal(t, 10, env.charts.lastDays)
}

func TestChartsHandler_Resumen_Falla(t *testing.T) {
	env := newTestEnv(t)
	env.charts.err = errors.New(`graficos: ERROR: relation "ventas_tmp" does not exist (SQLSTATE 42P01)`)
	resp := env.call(t, http.MethodGet, "/api/graficos/resumen", "", true)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeError(t, resp)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno del servidor", body.Message)
	assert.NotContains(t, body.Message, "SQLSTATE")
}
