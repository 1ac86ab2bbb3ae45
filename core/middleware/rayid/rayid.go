package rayid

import (
	"storage-sdk/core/logger"
	"storage-sdk/core/transport"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// New returns a middleware that assigns a RayID to every request.
// An incoming X-Request-ID header is reused so client and server logs line up.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(transport.RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(logger.RayIDKey, rid)
		c.Set(transport.RequestIDHeader, rid)
		return c.Next()
	}
}
