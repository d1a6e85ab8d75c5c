package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/omarvides/tienda-stock/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status y duración.
// Los errores de validación (4xx) se registran como info, no como fallas del
// sistema; solo los 5xx suben a error.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		ev := log.Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("request")
		return err
	}
}
