package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpereyra/gestion-comercio-api/internal/application/dto"
	"github.com/jpereyra/gestion-comercio-api/internal/application/usecase"
)

// RubroHandler maneja las peticiones HTTP de la taxonomía de rubros.
type RubroHandler struct {
	uc *usecase.RubroUseCase
}

// NewRubroHandler construye el handler.
func NewRubroHandler(uc *usecase.RubroUseCase) *RubroHandler {
	return &RubroHandler{uc: uc}
}

// Crear godoc
// @Summary      Crear rubro con sus categorías
// @Tags         rubros
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CrearRubroRequest  true  "Rubro"
// @Success      201   {object}  dto.RubroResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rubros [post]
func (h *RubroHandler) Crear(c *fiber.Ctx) error {
	var in dto.CrearRubroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido."})
	}
	out, err := h.uc.Crear(c.Context(), in)
	if err != nil {
		return responderError(c, "Error al crear rubro", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar todos los rubros
// @Tags         rubros
// @Produce      json
// @Success      200  {array}  dto.RubroResponse
// @Router       /api/rubros [get]
func (h *RubroHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, "Error al obtener rubros", err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Reemplazar nombre y categorías de un rubro
// @Tags         rubros
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del rubro"
// @Param        body  body  dto.ActualizarRubroRequest  true  "Rubro"
// @Success      200   {object}  dto.RubroResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/rubros/{id} [put]
func (h *RubroHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarRubroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido."})
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, "Error al actualizar rubro", err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar un rubro completo
// @Tags         rubros
// @Produce      json
// @Param        id  path  string  true  "ID del rubro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rubros/{id} [delete]
func (h *RubroHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, "Error al eliminar rubro", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Rubro eliminado correctamente."})
}

// QuitarCategoria godoc
// @Summary      Quitar una categoría de un rubro
// @Tags         rubros
// @Produce      json
// @Param        id         path  string  true  "ID del rubro"
// @Param        categoria  path  string  true  "Nombre de la categoría"
// @Success      200  {object}  dto.RubroResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/rubros/{id}/categories/{categoria} [delete]
func (h *RubroHandler) QuitarCategoria(c *fiber.Ctx) error {
	out, err := h.uc.QuitarCategoria(c.Context(), c.Params("id"), c.Params("categoria"))
	if err != nil {
		return responderError(c, "Error al quitar categoría", err)
	}
	return c.JSON(out)
}
