package usecase

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jpereyra/gestion-comercio-api/internal/application/dto"
	"github.com/jpereyra/gestion-comercio-api/internal/application/importer"
	"github.com/jpereyra/gestion-comercio-api/internal/domain"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/entity"
	"github.com/jpereyra/gestion-comercio-api/internal/domain/repository"
)

// Columnas obligatorias de la carga masiva; el resto entra como atributo dinámico.
var columnasObligatorias = []string{
	"nombre", "categoria", "precio_costo", "precio_publico",
	"cantidad_stock", "fabricante", "sucursal",
}

// ProductoUseCase CRUD del catálogo más carga masiva desde planilla.
// La configuración global (autogeneración de SKU) se consulta en el momento
// de crear, nunca se cachea.
type ProductoUseCase struct {
	productos  repository.ProductRepository
	sucursales repository.SucursalRepository
	settings   repository.SettingsRepository
	generarSKU func() string
	now        func() time.Time
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(
	productos repository.ProductRepository,
	sucursales repository.SucursalRepository,
	settings repository.SettingsRepository,
) *ProductoUseCase {
	return &ProductoUseCase{
		productos:  productos,
		sucursales: sucursales,
		settings:   settings,
		generarSKU: skuAleatorio,
		now:        time.Now,
	}
}

// WithSKUGenerator reemplaza el generador de SKU (para tests).
func (uc *ProductoUseCase) WithSKUGenerator(fn func() string) *ProductoUseCase {
	uc.generarSKU = fn
	return uc
}

// WithClock reemplaza el reloj (para tests).
func (uc *ProductoUseCase) WithClock(now func() time.Time) *ProductoUseCase {
	uc.now = now
	return uc
}

// skuAleatorio genera un número de 13 dígitos.
func skuAleatorio() string {
	n := 1_000_000_000_000 + rand.Int63n(9_000_000_000_000)
	return strconv.FormatInt(n, 10)
}

// NormalizarPrecio interpreta un monto en formato regional: descarta símbolos
// de moneda y separadores de miles y convierte la coma decimal a punto.
// "$ 1.234,56" -> 1234.56. Devuelve cero si no queda nada parseable.
func NormalizarPrecio(valor string) decimal.Decimal {
	var b strings.Builder
	for _, r := range valor {
		if (r >= '0' && r <= '9') || r == ',' {
			b.WriteRune(r)
		}
	}
	limpio := strings.Replace(b.String(), ",", ".", 1)
	d, err := decimal.NewFromString(limpio)
	if err != nil {
		return decimal.Zero
	}
	return d.Round(2)
}

// parsePrecio acepta primero formato con punto decimal ("1234.56") y cae al
// formato regional si no parsea.
func parsePrecio(valor string) decimal.Decimal {
	if d, err := decimal.NewFromString(strings.TrimSpace(valor)); err == nil {
		return d.Round(2)
	}
	return NormalizarPrecio(valor)
}

// Crear crea un producto. Si no viene SKU y la configuración global lo
// permite, genera uno de 13 dígitos reintentando hasta que sea único; como
// último recurso (configuración inaccesible) genera uno igual para no dejar
// el campo vacío.
func (uc *ProductoUseCase) Crear(ctx context.Context, in dto.CrearProductoRequest) (*dto.ProductoResponse, error) {
	if in.Nombre == "" || in.Rubro == "" || in.Categoria == "" {
		return nil, fmt.Errorf("faltan datos obligatorios (nombre, rubro, categoría): %w", domain.ErrInvalidInput)
	}
	if in.FechaVencimiento == "" {
		return nil, fmt.Errorf("la fecha de vencimiento es requerida: %w", domain.ErrInvalidInput)
	}
	vencimiento, err := parseFecha(in.FechaVencimiento)
	if err != nil {
		return nil, fmt.Errorf("fecha de vencimiento inválida: %w", domain.ErrInvalidInput)
	}

	sku := strings.TrimSpace(in.SKU)
	if sku == "" {
		settings, err := uc.settings.Get(ctx)
		if err == nil && settings != nil && settings.AutoGenerarSKU {
			sku, err = uc.skuUnico(ctx)
			if err != nil {
				return nil, err
			}
		}
	}
	// El SKU nunca queda vacío, aunque la configuración no esté disponible.
	if sku == "" {
		sku = uc.generarSKU()
	}

	fabricante := in.Fabricante
	if fabricante == "" {
		fabricante = "Desconocido"
	}

	producto := &entity.Product{
		ID:                       uuid.New().String(),
		Nombre:                   in.Nombre,
		Rubro:                    in.Rubro,
		Categoria:                in.Categoria,
		Atributos:                in.Atributos,
		PrecioCosto:              parsePrecio(in.PrecioCosto),
		PrecioPublico:            parsePrecio(in.PrecioPublico),
		CantidadStock:            in.CantidadStock,
		SKU:                      sku,
		Fabricante:               fabricante,
		SucursalID:               in.Sucursal,
		ImagenURL:                in.ImagenURL,
		FechaVencimiento:         vencimiento,
		FechaUltimaActualizacion: uc.now(),
		Activo:                   true,
	}
	if err := uc.productos.Create(ctx, producto); err != nil {
		return nil, err
	}
	out := toProductoResponse(producto)
	return &out, nil
}

// skuUnico genera SKUs de 13 dígitos hasta encontrar uno libre.
func (uc *ProductoUseCase) skuUnico(ctx context.Context) (string, error) {
	for {
		sku := uc.generarSKU()
		existe, err := uc.productos.ExistsSKU(ctx, sku)
		if err != nil {
			return "", err
		}
		if !existe {
			return sku, nil
		}
	}
}

// Listar devuelve todos los productos con la sucursal expandida.
func (uc *ProductoUseCase) Listar(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := uc.productos.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// ListarPorSucursal valida que la sucursal exista y devuelve sus productos.
// Sin productos para la sucursal es un caso no-encontrado, no una lista vacía.
func (uc *ProductoUseCase) ListarPorSucursal(ctx context.Context, sucursalID string) ([]dto.ProductoResponse, error) {
	sucursal, err := uc.sucursales.GetByID(ctx, sucursalID)
	if err != nil {
		return nil, err
	}
	if sucursal == nil {
		return nil, fmt.Errorf("la sucursal proporcionada no existe: %w", domain.ErrInvalidInput)
	}
	productos, err := uc.productos.ListBySucursal(ctx, sucursalID)
	if err != nil {
		return nil, err
	}
	if len(productos) == 0 {
		return nil, fmt.Errorf("no se encontraron productos para esta sucursal: %w", domain.ErrNotFound)
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

// Actualizar aplica un merge parcial. Si cambia la sucursal se revalida su
// existencia; los precios pasan por la normalización regional antes de guardarse.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, id string, in dto.ActualizarProductoRequest) (*dto.ProductoResponse, error) {
	producto, err := uc.productos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, fmt.Errorf("producto no encontrado: %w", domain.ErrNotFound)
	}

	if in.Sucursal != nil && *in.Sucursal != producto.SucursalID {
		sucursal, err := uc.sucursales.GetByID(ctx, *in.Sucursal)
		if err != nil {
			return nil, err
		}
		if sucursal == nil {
			return nil, fmt.Errorf("la sucursal proporcionada no existe: %w", domain.ErrInvalidInput)
		}
		producto.SucursalID = *in.Sucursal
	}
	if in.Nombre != nil {
		producto.Nombre = *in.Nombre
	}
	if in.Rubro != nil {
		producto.Rubro = *in.Rubro
	}
	if in.Categoria != nil {
		producto.Categoria = *in.Categoria
	}
	if in.Atributos != nil {
		producto.Atributos = in.Atributos
	}
	if in.PrecioCosto != nil {
		producto.PrecioCosto = NormalizarPrecio(*in.PrecioCosto)
	}
	if in.PrecioPublico != nil {
		producto.PrecioPublico = NormalizarPrecio(*in.PrecioPublico)
	}
	if in.CantidadStock != nil {
		producto.CantidadStock = *in.CantidadStock
	}
	if in.Fabricante != nil {
		producto.Fabricante = *in.Fabricante
	}
	if in.ImagenURL != nil {
		producto.ImagenURL = *in.ImagenURL
	}
	if in.FechaVencimiento != nil {
		// La fecha es obligatoria: no se puede limpiar, solo reemplazar.
		vencimiento, err := parseFecha(*in.FechaVencimiento)
		if err != nil {
			return nil, fmt.Errorf("fecha de vencimiento inválida: %w", domain.ErrInvalidInput)
		}
		producto.FechaVencimiento = vencimiento
	}
	producto.FechaUltimaActualizacion = uc.now()

	if err := uc.productos.Update(ctx, producto); err != nil {
		return nil, err
	}
	out := toProductoResponse(producto)
	return &out, nil
}

// CambiarEstado activa o desactiva un producto sin tocar el resto de campos.
func (uc *ProductoUseCase) CambiarEstado(ctx context.Context, id string, activo bool) (*dto.ProductoResponse, error) {
	producto, err := uc.productos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, fmt.Errorf("producto no encontrado: %w", domain.ErrNotFound)
	}
	if err := uc.productos.SetActivo(ctx, id, activo); err != nil {
		return nil, err
	}
	producto.Activo = activo
	out := toProductoResponse(producto)
	return &out, nil
}

// Eliminar borra el producto en forma definitiva.
func (uc *ProductoUseCase) Eliminar(ctx context.Context, id string) error {
	return uc.productos.Delete(ctx, id)
}

// Importar procesa una planilla: la primera fila son los nombres de columna,
// las obligatorias mapean a campos del producto y el resto entra como
// atributos de texto. La sucursal se resuelve por nombre; una sucursal
// desconocida en cualquier fila aborta la carga completa sin insertar nada.
func (uc *ProductoUseCase) Importar(ctx context.Context, archivo io.Reader) ([]dto.ProductoResponse, error) {
	filas, err := importer.LeerPlanilla(archivo)
	if err != nil {
		return nil, fmt.Errorf("no se pudo leer la planilla: %w", domain.ErrInvalidInput)
	}

	obligatoria := make(map[string]bool, len(columnasObligatorias))
	for _, c := range columnasObligatorias {
		obligatoria[c] = true
	}

	productos := make([]*entity.Product, 0, len(filas))
	for _, fila := range filas {
		sucursal, err := uc.sucursales.GetByNombre(ctx, fila.Valor("sucursal"))
		if err != nil {
			return nil, err
		}
		if sucursal == nil {
			return nil, fmt.Errorf("la sucursal %s no existe: %w", fila.Valor("sucursal"), domain.ErrInvalidInput)
		}

		stock := 0
		if s := fila.Valor("cantidad_stock"); s != "" {
			stock, err = strconv.Atoi(strings.TrimSpace(s))
			if err != nil {
				return nil, fmt.Errorf("cantidad_stock inválida %q: %w", s, domain.ErrInvalidInput)
			}
		}

		var atributos []entity.AtributoProducto
		for _, col := range fila.Columnas {
			if obligatoria[col] {
				continue
			}
			atributos = append(atributos, entity.AtributoProducto{
				Nombre: col,
				Tipo:   entity.AtributoTexto,
				Valor:  fila.Valor(col),
			})
		}

		productos = append(productos, &entity.Product{
			ID:                       uuid.New().String(),
			Nombre:                   fila.Valor("nombre"),
			Categoria:                fila.Valor("categoria"),
			Atributos:                atributos,
			PrecioCosto:              parsePrecio(fila.Valor("precio_costo")),
			PrecioPublico:            parsePrecio(fila.Valor("precio_publico")),
			CantidadStock:            stock,
			Fabricante:               fila.Valor("fabricante"),
			SucursalID:               sucursal.ID,
			FechaUltimaActualizacion: uc.now(),
			Activo:                   true,
		})
	}

	if err := uc.productos.CreateBatch(ctx, productos); err != nil {
		return nil, err
	}

	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		out = append(out, toProductoResponse(p))
	}
	return out, nil
}

func toProductoResponse(p *entity.Product) dto.ProductoResponse {
	resp := dto.ProductoResponse{
		ID:                       p.ID,
		Nombre:                   p.Nombre,
		Rubro:                    p.Rubro,
		Categoria:                p.Categoria,
		Atributos:                p.Atributos,
		PrecioCosto:              p.PrecioCosto,
		PrecioPublico:            p.PrecioPublico,
		CantidadStock:            p.CantidadStock,
		SKU:                      p.SKU,
		Fabricante:               p.Fabricante,
		Sucursal:                 p.SucursalID,
		ImagenURL:                p.ImagenURL,
		FechaVencimiento:         p.FechaVencimiento,
		FechaUltimaActualizacion: p.FechaUltimaActualizacion,
		Activo:                   p.Activo,
	}
	if p.Sucursal != nil {
		resp.SucursalRef = &dto.SucursalRef{ID: p.Sucursal.ID, Nombre: p.Sucursal.Nombre}
	}
	return resp
}
