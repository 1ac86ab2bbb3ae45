package auth

import (
	"crypto/subtle"
	"strings"

	"storage-sdk/core/transport"

	"github.com/gofiber/fiber/v2"
)

// CodeUnauthorized is the envelope error code for rejected credentials.
const CodeUnauthorized = "unauthorized"

// Config holds the API key the middleware checks against.
type Config struct {
	// ApiKey is the expected Bearer token. Empty disables the check.
	ApiKey string
}

// New returns a middleware rejecting requests without the configured Bearer token.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.ApiKey == "" {
			return c.Next()
		}

		token := strings.TrimPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.ApiKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(
				transport.NewErrorEnvelope(CodeUnauthorized, "missing or invalid API key", fiber.StatusUnauthorized),
			)
		}
		return c.Next()
	}
}
