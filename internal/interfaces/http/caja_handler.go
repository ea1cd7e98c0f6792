package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jpereyra/gestion-comercio-api/internal/application/dto"
	"github.com/jpereyra/gestion-comercio-api/internal/application/usecase"
)

// CajaHandler maneja las peticiones HTTP del libro de caja.
type CajaHandler struct {
	uc *usecase.CajaUseCase
}

// NewCajaHandler construye el handler.
func NewCajaHandler(uc *usecase.CajaUseCase) *CajaHandler {
	return &CajaHandler{uc: uc}
}

// Abrir godoc
// @Summary      Apertura de caja
// @Tags         caja
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AperturaCajaRequest  true  "Datos de apertura"
// @Success      201   {object}  dto.MovimientoCreadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/caja/open [post]
func (h *CajaHandler) Abrir(c *fiber.Ctx) error {
	var in dto.AperturaCajaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido."})
	}
	out, err := h.uc.Abrir(c.Context(), in)
	if err != nil {
		return responderError(c, "Error en apertura de caja", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovimientoCreadoResponse{
		Message:    "Caja abierta correctamente.",
		Movimiento: *out,
	})
}

// Cerrar godoc
// @Summary      Cierre de caja con suma automática de ventas del día
// @Tags         caja
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CierreCajaRequest  true  "Datos de cierre"
// @Success      201   {object}  dto.MovimientoCreadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/caja/close [post]
func (h *CajaHandler) Cerrar(c *fiber.Ctx) error {
	var in dto.CierreCajaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido."})
	}
	out, err := h.uc.Cerrar(c.Context(), in)
	if err != nil {
		return responderError(c, "Error al cerrar caja", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovimientoCreadoResponse{
		Message:    "Caja cerrada correctamente.",
		Movimiento: *out,
	})
}

// Registrar godoc
// @Summary      Registrar ingreso o egreso manual
// @Tags         caja
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovimientoManualRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovimientoCreadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/caja [post]
func (h *CajaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.MovimientoManualRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido."})
	}
	out, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		return responderError(c, "Error al crear movimiento", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MovimientoCreadoResponse{
		Message:    "Movimiento de caja registrado.",
		Movimiento: *out,
	})
}

// Listar godoc
// @Summary      Movimientos activos por sucursal y rango de fechas
// @Tags         caja
// @Produce      json
// @Param        sucursal     query  string  false  "ID de sucursal"
// @Param        fechaInicio  query  string  false  "Fecha desde (YYYY-MM-DD)"
// @Param        fechaFin     query  string  false  "Fecha hasta (YYYY-MM-DD)"
// @Success      200  {array}  dto.MovimientoResponse
// @Router       /api/caja [get]
func (h *CajaHandler) Listar(c *fiber.Ctx) error {
	q := dto.MovimientosQuery{
		Sucursal:    c.Query("sucursal"),
		FechaInicio: c.Query("fechaInicio"),
		FechaFin:    c.Query("fechaFin"),
	}
	out, err := h.uc.Listar(c.Context(), q)
	if err != nil {
		return responderError(c, "Error al obtener movimientos", err)
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Resumen diario: ventas, ingresos, egresos y neto de caja
// @Tags         caja
// @Produce      json
// @Param        sucursal  query  string  true  "ID de sucursal"
// @Success      200  {object}  dto.ResumenDiarioResponse
// @Router       /api/caja/summary [get]
func (h *CajaHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.ResumenDiario(c.Context(), c.Query("sucursal"))
	if err != nil {
		return responderError(c, "Error al obtener resumen", err)
	}
	return c.JSON(out)
}

// Actualizar godoc
// @Summary      Editar un movimiento (merge parcial)
// @Tags         caja
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del movimiento"
// @Param        body  body  dto.ActualizarMovimientoRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.MovimientoCreadoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/caja/{id} [put]
func (h *CajaHandler) Actualizar(c *fiber.Ctx) error {
	var in dto.ActualizarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "Cuerpo inválido."})
	}
	out, err := h.uc.Actualizar(c.Context(), c.Params("id"), in)
	if err != nil {
		return responderError(c, "Error al actualizar movimiento", err)
	}
	return c.JSON(dto.MovimientoCreadoResponse{
		Message:    "Movimiento actualizado correctamente.",
		Movimiento: *out,
	})
}

// Turno godoc
// @Summary      Apertura, cierre y movimientos del turno vigente
// @Tags         caja
// @Produce      json
// @Param        sucursal  query  string  true  "ID de sucursal"
// @Success      200  {object}  dto.TurnoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caja/turno [get]
func (h *CajaHandler) Turno(c *fiber.Ctx) error {
	out, err := h.uc.Turno(c.Context(), c.Query("sucursal"))
	if err != nil {
		return responderError(c, "Error al obtener movimientos del turno", err)
	}
	return c.JSON(out)
}

// UltimoCierre godoc
// @Summary      Monto del último cierre de la sucursal
// @Tags         caja
// @Produce      json
// @Param        sucursal  query  string  true  "ID de sucursal"
// @Success      200  {object}  dto.UltimoCierreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caja/ultimo-cierre [get]
func (h *CajaHandler) UltimoCierre(c *fiber.Ctx) error {
	out, err := h.uc.UltimoCierre(c.Context(), c.Query("sucursal"))
	if err != nil {
		return responderError(c, "Error interno", err)
	}
	return c.JSON(out)
}

// Eliminar godoc
// @Summary      Eliminar un movimiento en forma definitiva
// @Tags         caja
// @Produce      json
// @Param        id  path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/caja/{id} [delete]
func (h *CajaHandler) Eliminar(c *fiber.Ctx) error {
	if err := h.uc.Eliminar(c.Context(), c.Params("id")); err != nil {
		return responderError(c, "Error al eliminar movimiento", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Movimiento eliminado correctamente."})
}
