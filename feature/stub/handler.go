package stub

import (
	"encoding/json"
	"time"

	"storage-sdk/core/logger"
	"storage-sdk/core/transport"
	"storage-sdk/feature/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the storage REST routes from the service's fixtures.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers one POST route per SDK endpoint and an envelope
// shaped fallback for everything else.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	for _, path := range storage.Paths {
		app.Post(path, h.HandleStorageCall)
	}
	app.Use(h.HandleUnknownRoute)
}

// HandleStorageCall records the call and answers with its fixture.
func (h *Handler) HandleStorageCall(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	body := append([]byte(nil), c.Body()...)
	if len(body) > 0 && !json.Valid(body) {
		l.Warn("Rejected malformed request body", zap.String("path", c.Path()))
		return c.Status(fiber.StatusBadRequest).JSON(
			transport.NewErrorEnvelope(transport.CodeInvalidRequest, "request body is not valid JSON", fiber.StatusBadRequest),
		)
	}

	rid, _ := c.Locals(logger.RayIDKey).(string)
	status, env := h.service.Respond(Request{
		Path:       c.Path(),
		RayID:      rid,
		Body:       body,
		ReceivedAt: time.Now(),
	})

	return c.Status(status).JSON(env)
}

// HandleUnknownRoute answers unmatched routes with a not_found envelope.
func (h *Handler) HandleUnknownRoute(c *fiber.Ctx) error {
	logger.WithRayID(h.service.logger, c).Warn("Unknown route",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
	)
	return c.Status(fiber.StatusNotFound).JSON(
		transport.NewErrorEnvelope("not_found", "no route "+c.Method()+" "+c.Path(), fiber.StatusNotFound),
	)
}
