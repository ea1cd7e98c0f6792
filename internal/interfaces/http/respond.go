package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jpereyra/gestion-comercio-api/internal/application/dto"
	"github.com/jpereyra/gestion-comercio-api/internal/domain"
)

// responderError mapea errores de dominio a HTTP: 400 para validación y
// duplicados, 404 para no encontrado, 500 para el resto. En el caso 500 el
// mensaje contextual va al cliente y el detalle queda en el campo error.
func responderError(c *fiber.Ctx, mensajeInterno string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: mensajeDe(err)})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Message: mensajeDe(err)})
	default:
		log.Error().Err(err).Msg(mensajeInterno)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Message: mensajeInterno,
			Error:   err.Error(),
		})
	}
}

// mensajeDe devuelve el texto del error sin el sufijo del sentinel de dominio.
func mensajeDe(err error) string {
	msg := err.Error()
	for _, sentinel := range []error{domain.ErrInvalidInput, domain.ErrNotFound, domain.ErrDuplicate, domain.ErrConflict} {
		msg = strings.TrimSuffix(msg, ": "+sentinel.Error())
	}
	return msg
}
