package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/seanosorio/weapons-api/internal/application/dto"
)

// internalError registra el error real y responde 500 con un mensaje genérico.
// Nunca se devuelven detalles de conexión ni stack traces al cliente.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no manejado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno del servidor",
	})
}
