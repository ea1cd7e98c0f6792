package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jpereyra/gestion-comercio-api/internal/application/dto"
	"github.com/jpereyra/gestion-comercio-api/internal/application/usecase"
	"github.com/jpereyra/gestion-comercio-api/internal/domain"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type productosFake struct {
	items []*entity.Product
}

func (f *productosFake) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	f.items = append(f.items, &cp)
	return nil
}

func (f *productosFake) CreateBatch(_ context.Context, productos []*entity.Product) error {
	for _, p := range productos {
		cp := *p
		f.items = append(f.items, &cp)
	}
	return nil
}

func (f *productosFake) GetByID(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *productosFake) ExistsSKU(_ context.Context, sku string) (bool, error) {
	for _, p := range f.items {
		if p.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (f *productosFake) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.items))
	for _, p := range f.items {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (f *productosFake) ListBySucursal(_ context.Context, sucursalID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.items {
		if p.SucursalID == sucursalID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *productosFake) Update(_ context.Context, p *entity.Product) error {
	for i, it := range f.items {
		if it.ID == p.ID {
			cp := *p
			f.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (f *productosFake) SetActivo(_ context.Context, id string, activo bool) error {
	for _, p := range f.items {
		if p.ID == id {
			p.Activo = activo
		}
	}
	return nil
}

func (f *productosFake) Delete(_ context.Context, id string) error {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type sucursalesFake struct {
	items []*entity.Sucursal
}

func (f *sucursalesFake) GetByID(_ context.Context, id string) (*entity.Sucursal, error) {
	for _, s := range f.items {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *sucursalesFake) GetByNombre(_ context.Context, nombre string) (*entity.Sucursal, error) {
	for _, s := range f.items {
		if s.Nombre == nombre {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *sucursalesFake) List(_ context.Context) ([]*entity.Sucursal, error) {
	return f.items, nil
}

type settingsFake struct {
	settings *entity.Settings
	err      error
}

func (f *settingsFake) Get(_ context.Context) (*entity.Settings, error) {
	return f.settings, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func buildProductoUC(autoSKU bool) (*usecase.ProductoUseCase, *productosFake) {
	productos := &productosFake{}
	sucursales := &sucursalesFake{items: []*entity.Sucursal{
		{ID: testSucursal, Nombre: "Central"},
	}}
	settings := &settingsFake{settings: &entity.Settings{ID: "s1", AutoGenerarSKU: autoSKU}}
	uc := usecase.NewProductoUseCase(productos, sucursales, settings).
		WithClock(func() time.Time { return testAhora })
	return uc, productos
}

// skuSecuencial devuelve un generador que emite los valores dados en orden.
func skuSecuencial(valores ...string) func() string {
	i := 0
	return func() string {
		v := valores[i%len(valores)]
		i++
		return v
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Normalización de precios
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizarPrecio(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"$ 1.234,56", "1234.56"},
		{"1.234,56", "1234.56"},
		{"200", "200"},
		{"99,9", "99.9"},
		{"ARS 15.000", "15000"},
		{"", "0"},
		{"sin precio", "0"},
	}
	for _, c := range casos {
		got := usecase.NormalizarPrecio(c.entrada)
		assert.Equal(t, c.esperado, got.String(), "entrada %q", c.entrada)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCrearProducto_DatosObligatorios(t *testing.T) {
	uc, _ := buildProductoUC(false)

	_, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Lapicera",
		// falta rubro y categoría
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCrearProducto_SKUProvistoSeRespeta(t *testing.T) {
	uc, productos := buildProductoUC(true)

	out, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:           "Lapicera",
		Rubro:            "Librería",
		Categoria:        "Escritura",
		SKU:              "  ABC-123  ",
		Sucursal:         testSucursal,
		FechaVencimiento: "2025-12-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "ABC-123", out.SKU, "el SKU provisto se usa recortado, sin generar otro")
	require.Len(t, productos.items, 1)
}

// Con autogeneración activa, un SKU ocupado fuerza reintentos hasta dar con uno libre.
func TestCrearProducto_SKUGeneradoReintentaHastaUnico(t *testing.T) {
	uc, productos := buildProductoUC(true)
	productos.items = append(productos.items, &entity.Product{ID: "p0", SKU: "1111111111111"})
	uc.WithSKUGenerator(skuSecuencial("1111111111111", "2222222222222"))

	out, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:           "Cuaderno",
		Rubro:            "Librería",
		Categoria:        "Papelería",
		Sucursal:         testSucursal,
		FechaVencimiento: "2025-12-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "2222222222222", out.SKU)
}

// Con la autogeneración apagada igual se asigna un SKU: el campo nunca queda vacío.
func TestCrearProducto_SKUDeUltimoRecurso(t *testing.T) {
	uc, _ := buildProductoUC(false)
	uc.WithSKUGenerator(skuSecuencial("3333333333333"))

	out, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:           "Goma",
		Rubro:            "Librería",
		Categoria:        "Papelería",
		Sucursal:         testSucursal,
		FechaVencimiento: "2025-12-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "3333333333333", out.SKU)
}

// Una configuración global inaccesible no bloquea el alta.
func TestCrearProducto_SettingsInaccesible(t *testing.T) {
	productos := &productosFake{}
	sucursales := &sucursalesFake{items: []*entity.Sucursal{{ID: testSucursal, Nombre: "Central"}}}
	settings := &settingsFake{err: errors.New("timeout")}
	uc := usecase.NewProductoUseCase(productos, sucursales, settings).
		WithSKUGenerator(skuSecuencial("4444444444444"))

	out, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:           "Regla",
		Rubro:            "Librería",
		Categoria:        "Papelería",
		Sucursal:         testSucursal,
		FechaVencimiento: "2025-12-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "4444444444444", out.SKU)
}

func TestCrearProducto_FabricantePorDefecto(t *testing.T) {
	uc, _ := buildProductoUC(false)

	out, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:           "Tijera",
		Rubro:            "Librería",
		Categoria:        "Papelería",
		PrecioCosto:      "1.500,50",
		PrecioPublico:    "3000",
		Sucursal:         testSucursal,
		FechaVencimiento: "2025-12-31",
	})

	require.NoError(t, err)
	assert.Equal(t, "Desconocido", out.Fabricante)
	assert.Equal(t, "1500.5", out.PrecioCosto.String())
	assert.Equal(t, "3000", out.PrecioPublico.String())
	assert.Equal(t, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), out.FechaVencimiento)
	assert.True(t, out.Activo)
}

// La fecha de vencimiento es obligatoria: omitirla es un 400, no un producto
// con fecha cero.
func TestCrearProducto_FechaVencimientoRequerida(t *testing.T) {
	uc, productos := buildProductoUC(false)

	_, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:    "Yogur",
		Rubro:     "Alimentos",
		Categoria: "Lácteos",
		Sucursal:  testSucursal,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, productos.items)
}

func TestCrearProducto_FechaVencimientoInvalida(t *testing.T) {
	uc, _ := buildProductoUC(false)

	_, err := uc.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre:           "Yogur",
		Rubro:            "Alimentos",
		Categoria:        "Lácteos",
		FechaVencimiento: "31/12/2024",
		Sucursal:         testSucursal,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado por sucursal
// ──────────────────────────────────────────────────────────────────────────────

func TestListarPorSucursal_SucursalDesconocida(t *testing.T) {
	uc, _ := buildProductoUC(false)

	_, err := uc.ListarPorSucursal(context.Background(), "no-existe")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Sucursal válida sin productos: caso no-encontrado, no lista vacía.
func TestListarPorSucursal_SinProductos(t *testing.T) {
	uc, _ := buildProductoUC(false)

	_, err := uc.ListarPorSucursal(context.Background(), testSucursal)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListarPorSucursal_DevuelveSoloLosDeEsa(t *testing.T) {
	uc, productos := buildProductoUC(false)
	productos.items = append(productos.items,
		&entity.Product{ID: "p1", SucursalID: testSucursal},
		&entity.Product{ID: "p2", SucursalID: "otra"},
	)

	out, err := uc.ListarPorSucursal(context.Background(), testSucursal)

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización y estado
// ──────────────────────────────────────────────────────────────────────────────

func TestActualizarProducto_MergeParcial(t *testing.T) {
	uc, productos := buildProductoUC(false)
	productos.items = append(productos.items, &entity.Product{
		ID:            "p1",
		Nombre:        "Lapicera",
		SucursalID:    testSucursal,
		PrecioPublico: decimal.RequireFromString("100"),
	})

	precio := "1.250,00"
	out, err := uc.Actualizar(context.Background(), "p1", dto.ActualizarProductoRequest{
		PrecioPublico: &precio,
	})

	require.NoError(t, err)
	assert.Equal(t, "1250", out.PrecioPublico.String())
	assert.Equal(t, "Lapicera", out.Nombre, "los campos no enviados no cambian")
	assert.Equal(t, testAhora, out.FechaUltimaActualizacion)
}

func TestActualizarProducto_SucursalInexistente(t *testing.T) {
	uc, productos := buildProductoUC(false)
	productos.items = append(productos.items, &entity.Product{ID: "p1", SucursalID: testSucursal})

	otra := "no-existe"
	_, err := uc.Actualizar(context.Background(), "p1", dto.ActualizarProductoRequest{Sucursal: &otra})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestActualizarProducto_NoEncontrado(t *testing.T) {
	uc, _ := buildProductoUC(false)

	_, err := uc.Actualizar(context.Background(), "no-existe", dto.ActualizarProductoRequest{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCambiarEstado(t *testing.T) {
	uc, productos := buildProductoUC(false)
	productos.items = append(productos.items, &entity.Product{ID: "p1", Activo: true})

	out, err := uc.CambiarEstado(context.Background(), "p1", false)

	require.NoError(t, err)
	assert.False(t, out.Activo)
	assert.False(t, productos.items[0].Activo)
}

func TestCambiarEstado_NoEncontrado(t *testing.T) {
	uc, _ := buildProductoUC(false)

	_, err := uc.CambiarEstado(context.Background(), "no-existe", true)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Carga masiva
// ──────────────────────────────────────────────────────────────────────────────

// planillaDePrueba arma un xlsx en memoria con encabezados y filas dadas.
func planillaDePrueba(t *testing.T, filas ...[]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, fila := range filas {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &fila))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestImportar_CreaProductosConAtributosDinamicos(t *testing.T) {
	uc, productos := buildProductoUC(true)

	archivo := planillaDePrueba(t,
		[]interface{}{"nombre", "categoria", "precio_costo", "precio_publico", "cantidad_stock", "fabricante", "sucursal", "color"},
		[]interface{}{"Lapicera", "Escritura", "100,50", "200", "15", "BIC", "Central", "azul"},
		[]interface{}{"Cuaderno", "Papelería", "300", "550,25", "8", "Rivadavia", "Central", "rojo"},
	)

	out, err := uc.Importar(context.Background(), archivo)

	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Len(t, productos.items, 2)

	p := out[0]
	assert.Equal(t, "Lapicera", p.Nombre)
	assert.Equal(t, "Escritura", p.Categoria)
	assert.Equal(t, "100.5", p.PrecioCosto.String())
	assert.Equal(t, 15, p.CantidadStock)
	assert.Equal(t, "BIC", p.Fabricante)
	assert.Equal(t, testSucursal, p.Sucursal, "la sucursal se resuelve por nombre")
	assert.Empty(t, p.SKU, "la carga masiva no genera SKU")
	require.Len(t, p.Atributos, 1)
	assert.Equal(t, entity.AtributoProducto{Nombre: "color", Tipo: entity.AtributoTexto, Valor: "azul"}, p.Atributos[0])
}

// Una columna con encabezado vacío no se convierte en atributo sin nombre.
func TestImportar_EncabezadoVacioNoGeneraAtributo(t *testing.T) {
	uc, _ := buildProductoUC(true)

	archivo := planillaDePrueba(t,
		[]interface{}{"nombre", "categoria", "precio_costo", "precio_publico", "cantidad_stock", "fabricante", "sucursal", "", "color"},
		[]interface{}{"Lapicera", "Escritura", "100", "200", "15", "BIC", "Central", "sobrante", "azul"},
	)

	out, err := uc.Importar(context.Background(), archivo)

	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Len(t, out[0].Atributos, 1)
	assert.Equal(t, "color", out[0].Atributos[0].Nombre)
}

// Una sucursal desconocida en cualquier fila aborta la carga completa.
func TestImportar_SucursalDesconocidaAborta(t *testing.T) {
	uc, productos := buildProductoUC(true)

	archivo := planillaDePrueba(t,
		[]interface{}{"nombre", "categoria", "precio_costo", "precio_publico", "cantidad_stock", "fabricante", "sucursal"},
		[]interface{}{"Lapicera", "Escritura", "100", "200", "15", "BIC", "Central"},
		[]interface{}{"Cuaderno", "Papelería", "300", "550", "8", "Rivadavia", "Inexistente"},
	)

	_, err := uc.Importar(context.Background(), archivo)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, productos.items, "no debe quedar ninguna fila insertada")
}

func TestImportar_StockInvalido(t *testing.T) {
	uc, _ := buildProductoUC(true)

	archivo := planillaDePrueba(t,
		[]interface{}{"nombre", "categoria", "precio_costo", "precio_publico", "cantidad_stock", "fabricante", "sucursal"},
		[]interface{}{"Lapicera", "Escritura", "100", "200", "quince", "BIC", "Central"},
	)

	_, err := uc.Importar(context.Background(), archivo)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportar_ArchivoIlegible(t *testing.T) {
	uc, _ := buildProductoUC(true)

	_, err := uc.Importar(context.Background(), bytes.NewReader([]byte("esto no es un xlsx")))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
