package stub

import (
	"net/http"

	"storage-sdk/core/logger"
	"storage-sdk/core/middleware/auth"
	"storage-sdk/core/middleware/rayid"
	"storage-sdk/core/server"
	"storage-sdk/core/transport"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp builds the fiber application of the stub server: RayID, request
// logging, API key check, then the storage routes.
func NewApp(cfg server.Config, service *Service, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID must be first to trace everything
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(log, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Use(auth.New(auth.Config{ApiKey: cfg.ApiKey}))

	NewHandler(service).RegisterRoutes(app)
	return app
}

type appDoer struct {
	app *fiber.App
}

// NewDoer returns a transport.Doer that serves requests in-process from app,
// without opening a socket.
func NewDoer(app *fiber.App) transport.Doer {
	return appDoer{app: app}
}

func (d appDoer) Do(req *http.Request) (*http.Response, error) {
	return d.app.Test(req, -1)
}
