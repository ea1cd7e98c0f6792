package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpereyra/gestion-comercio-api/internal/application/dto"
	"github.com/jpereyra/gestion-comercio-api/internal/application/usecase"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/repository"
	apphttp "github.com/jpereyra/gestion-comercio-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos sobre los puertos que tocan los endpoints probados
// ──────────────────────────────────────────────────────────────────────────────

type movsFake struct {
	items []*entity.CashMovement
}

func (f *movsFake) Create(_ context.Context, m *entity.CashMovement) error {
	cp := *m
	f.items = append(f.items, &cp)
	return nil
}

func (f *movsFake) GetByID(_ context.Context, id string) (*entity.CashMovement, error) {
	for _, m := range f.items {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *movsFake) List(_ context.Context, _ repository.MovimientosFilter) ([]*entity.CashMovement, error) {
	return f.items, nil
}

func (f *movsFake) SumIngresosEgresos(_ context.Context, _ string, _, _ time.Time) (decimal.Decimal, decimal.Decimal, error) {
	ingresos, egresos := decimal.Zero, decimal.Zero
	for _, m := range f.items {
		switch m.Tipo {
		case entity.TipoIngreso:
			ingresos = ingresos.Add(m.Monto)
		case entity.TipoEgreso:
			egresos = egresos.Add(m.Monto)
		}
	}
	return ingresos, egresos, nil
}

func (f *movsFake) UltimoPorTipo(_ context.Context, _, tipo string) (*entity.CashMovement, error) {
	for i := len(f.items) - 1; i >= 0; i-- {
		if f.items[i].Tipo == tipo {
			cp := *f.items[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *movsFake) PrimerCierreDespuesDe(_ context.Context, _ string, _ time.Time) (*entity.CashMovement, error) {
	return nil, nil
}

func (f *movsFake) ListBetween(_ context.Context, _ string, _, _ time.Time) ([]*entity.CashMovement, error) {
	return f.items, nil
}

func (f *movsFake) Update(_ context.Context, _ *entity.CashMovement) error { return nil }
func (f *movsFake) Delete(_ context.Context, _ string) error               { return nil }

type ventasFijas struct {
	total decimal.Decimal
}

func (f *ventasFijas) SumTotal(_ context.Context, _ string, _, _ time.Time) (decimal.Decimal, error) {
	return f.total, nil
}

func buildApp(movs *movsFake, ventas decimal.Decimal) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CajaUC: usecase.NewCajaUseCase(movs, &ventasFijas{total: ventas}),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, ruta, cuerpo string) *http.Response {
	t.Helper()
	var req *http.Request
	if cuerpo != "" {
		req = httptest.NewRequest(method, ruta, strings.NewReader(cuerpo))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, ruta, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Apertura y cierre
// ──────────────────────────────────────────────────────────────────────────────

func TestPostOpen_Creado(t *testing.T) {
	movs := &movsFake{}
	app := buildApp(movs, decimal.Zero)

	resp := doJSON(t, app, http.MethodPost, "/api/caja/open",
		`{"sucursal":"s1","responsable":"u1","monto":1500.50}`)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decodeJSON[dto.MovimientoCreadoResponse](t, resp)
	assert.Equal(t, "Caja abierta correctamente.", out.Message)
	assert.Equal(t, entity.TipoApertura, out.Movimiento.Tipo)
	assert.True(t, out.Movimiento.Monto.Equal(decimal.RequireFromString("1500.50")))
	require.Len(t, movs.items, 1)
}

func TestPostOpen_SinMonto(t *testing.T) {
	app := buildApp(&movsFake{}, decimal.Zero)

	resp := doJSON(t, app, http.MethodPost, "/api/caja/open",
		`{"sucursal":"s1","responsable":"u1"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	out := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "faltan datos para apertura de caja", out.Message)
}

// El cierre deriva el saldo de ventas + ingresos - egresos y lo documenta en el comentario.
func TestPostClose_SaldoDerivado(t *testing.T) {
	movs := &movsFake{items: []*entity.CashMovement{
		{ID: "m1", Tipo: entity.TipoIngreso, Monto: decimal.RequireFromString("20"), Activo: true},
		{ID: "m2", Tipo: entity.TipoEgreso, Monto: decimal.RequireFromString("10"), Activo: true},
	}}
	app := buildApp(movs, decimal.RequireFromString("50"))

	resp := doJSON(t, app, http.MethodPost, "/api/caja/close",
		`{"sucursal":"s1","responsable":"u1"}`)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decodeJSON[dto.MovimientoCreadoResponse](t, resp)
	assert.Equal(t, "Caja cerrada correctamente.", out.Message)
	assert.True(t, out.Movimiento.Monto.Equal(decimal.RequireFromString("60")))
	assert.Equal(t,
		"Ventas: $50.00 + Ingresos: $20.00 − Egresos: $10.00 = Saldo: $60.00",
		out.Movimiento.Comentario)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas y errores
// ──────────────────────────────────────────────────────────────────────────────

func TestGetSummary_SucursalRequerida(t *testing.T) {
	app := buildApp(&movsFake{}, decimal.Zero)

	resp := doJSON(t, app, http.MethodGet, "/api/caja/summary", "")

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetTurno_SinApertura(t *testing.T) {
	app := buildApp(&movsFake{}, decimal.Zero)

	resp := doJSON(t, app, http.MethodGet, "/api/caja/turno?sucursal=s1", "")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	out := decodeJSON[dto.ErrorResponse](t, resp)
	assert.Equal(t, "no se encontró apertura de caja", out.Message)
}

func TestGetUltimoCierre_SinCierres(t *testing.T) {
	app := buildApp(&movsFake{}, decimal.Zero)

	resp := doJSON(t, app, http.MethodGet, "/api/caja/ultimo-cierre?sucursal=s1", "")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDelete_NoEncontrado(t *testing.T) {
	app := buildApp(&movsFake{}, decimal.Zero)

	resp := doJSON(t, app, http.MethodDelete, "/api/caja/no-existe", "")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPostMovimiento_TipoInvalido(t *testing.T) {
	app := buildApp(&movsFake{}, decimal.Zero)

	resp := doJSON(t, app, http.MethodPost, "/api/caja",
		`{"tipo":"prestamo","concepto":"x","monto":1,"sucursal":"s1","responsable":"u1"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
