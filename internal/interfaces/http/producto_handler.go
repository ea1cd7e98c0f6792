package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpereyra/gestion-comercio-api/internal/application/dto"
	"github.com/jpereyra/gestion-comercio-api/internal/application/usecase"
)

// ProductoHandler maneja las peticiones HTTP del catálogo de productos.
type ProductoHandler struct {
	uc *usecase.ProductoUseCase
}

// NewProductoHandler construye el handler.
func NewProductoHandler(uc *usecase.ProductoUseCase) *ProductoHandler {
	return &ProductoHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearProductoRequest  true  "Producto"
// @Success      201   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/productos [post]
func (h *ProductoHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido."})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, "Error al crear producto", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar todos los productos
// @Tags         productos
// @Produce      json
// @Success      200  {array}  dto.ProductoResponse
// @Router       /api/productos [get]
func (h *ProductoHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, "Error al obtener productos", err)
	}
	return c.JSON(out)
}

// ListarPorSucursal godoc
// @Summary      Productos de una sucursal
// @Tags         productos
// @Produce      json
// @Param        sucursal  path  string  true  "ID de sucursal"
// @Success      200  {array}  dto.ProductoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/productos/sucursal/{sucursal} [get]
func (h *ProductoHandler) ListarPorSucursal(c *fiber.Ctx) error {
	out, err := h.uc.ListarPorSucursal(c.Context(), c.Params("sucursal"))
	if err != nil {
		return responderError(c, "Error al obtener productos de la sucursal", err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Editar un producto (merge parcial)
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.ActualizarProductoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id} [put]
func (h *ProductoHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarProductoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido."})
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, "Error al actualizar producto", err)
	}
	return c.JSON(out)
}

// CambiarEstado godoc
// @Summary      Activar o desactivar un producto
// @Tags         productos
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.CambiarEstadoRequest  true  "Estado"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/productos/{id}/estado [patch]
func (h *ProductoHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido."})
	}
	out, err := h.uc.CambiarEstado(c.Context(), c.Params("id"), in.Activo)
	if err != nil {
		return responderError(c, "Error al cambiar estado del producto", err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar un producto en forma definitiva
// @Tags         productos
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/productos/{id} [delete]
func (h *ProductoHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, "Error al eliminar producto", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Producto eliminado correctamente."})
}

// Importar godoc
// @Summary      Carga masiva de productos desde planilla xlsx
// @Tags         productos
// @Accept       multipart/form-data
// @Produce      json
// @Param        archivo  formData  file  true  "Planilla xlsx"
// @Success      201  {object}  dto.ImportacionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/productos/importar [post]
func (h *ProductoHandler) Importar(c *fiber.Ctx) error {
	fh, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Falta el archivo de la planilla."})
	}
	archivo, err := fh.Open()
	if err != nil {
		return responderError(c, "Error al abrir la planilla", err)
	}
	defer archivo.Close()

	productos, err := h.uc.Importar(c.Context(), archivo)
	if err != nil {
		return responderError(c, "Error en la carga masiva", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ImportacionResponse{
		Message:   "Productos importados correctamente.",
		Productos: productos,
	})
}
