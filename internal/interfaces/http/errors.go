package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dulceria/sweetshop-api/internal/application/dto"
	"github.com/dulceria/sweetshop-api/internal/domain"
	"github.com/dulceria/sweetshop-api/pkg/logger"
)

// respondError convierte cualquier error en el sobre JSON {"error": msg}.
// Los errores tipados de dominio conservan su status y mensaje; todo lo demás
// se registra del lado del servidor y responde 500 sin detalle.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	var derr *domain.Error
	if errors.As(err, &derr) && derr.Kind != domain.KindInternal {
		return c.Status(derr.Status()).JSON(dto.ErrorResponse{Error: derr.Message})
	}
	if log != nil {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no manejado")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: domain.ErrInternal.Message})
}
