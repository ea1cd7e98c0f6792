package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpereyra/gestion-comercio-api/internal/application/usecase"
)

// SucursalHandler expone la lista de sucursales para los selectores del frontend.
type SucursalHandler struct {
	uc *usecase.SucursalUseCase
}

// NewSucursalHandler construye el handler.
func NewSucursalHandler(uc *usecase.SucursalUseCase) *SucursalHandler {
	return &SucursalHandler{uc: uc}
}

// Listar godoc
// @Summary      Listar sucursales
// @Tags         sucursales
// @Produce      json
// @Success      200  {array}  dto.SucursalRef
// @Router       /api/sucursales [get]
func (h *SucursalHandler) Listar(c *fiber.Ctx) error {
	out, err := h.uc.Listar(c.Context())
	if err != nil {
		return responderError(c, "Error al obtener sucursales", err)
	}
	return c.JSON(out)
}
