package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpereyra/gestion-comercio-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CajaUC     *usecase.CajaUseCase
	ProductoUC *usecase.ProductoUseCase
	RubroUC    *usecase.RubroUseCase
	SucursalUC *usecase.SucursalUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Libro de caja
	caja := api.Group("/caja")
	cajaHandler := NewCajaHandler(deps.CajaUC)
	caja.Post("/open", cajaHandler.Abrir)
	caja.Post("/close", cajaHandler.Cerrar)
	caja.Get("/summary", cajaHandler.Resumen)
	caja.Get("/turno", cajaHandler.Turno)
	caja.Get("/ultimo-cierre", cajaHandler.UltimoCierre)
	caja.Post("/", cajaHandler.Registrar)
	caja.Get("/", cajaHandler.Listar)
	caja.Put("/:id", cajaHandler.Actualizar)
	caja.Delete("/:id", cajaHandler.Eliminar)

	// Catálogo de productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC)
	productos.Post("/importar", productoHandler.Importar)
	productos.Get("/sucursal/:sucursal", productoHandler.ListarPorSucursal)
	productos.Post("/", productoHandler.Crear)
	productos.Get("/", productoHandler.Listar)
	productos.Put("/:id", productoHandler.Actualizar)
	productos.Patch("/:id/estado", productoHandler.CambiarEstado)
	productos.Delete("/:id", productoHandler.Eliminar)

	// Rubros y categorías
	rubros := api.Group("/rubros")
	rubroHandler := NewRubroHandler(deps.RubroUC)
	rubros.Post("/", rubroHandler.Crear)
	rubros.Get("/", rubroHandler.Listar)
	rubros.Put("/:id", rubroHandler.Actualizar)
	rubros.Delete("/:id/categories/:categoria", rubroHandler.QuitarCategoria)
	rubros.Delete("/:id", rubroHandler.Eliminar)

	// Sucursales (solo lectura)
	sucursales := api.Group("/sucursales")
	sucursalHandler := NewSucursalHandler(deps.SucursalUC)
	sucursales.Get("/", sucursalHandler.Listar)
}
