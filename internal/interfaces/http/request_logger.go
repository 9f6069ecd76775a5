package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dulceria/sweetshop-api/pkg/logger"
)

// LocalRequestID clave de Locals para el id de la petición.
const LocalRequestID = "request_id"

// RequestLogger registra cada petición con un id propio, método, ruta, status y
// duración. El id también se devuelve en el header X-Request-ID.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.NewString()
		c.Locals(LocalRequestID, reqID)
		c.Set("X-Request-ID", reqID)

		err := c.Next()

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
