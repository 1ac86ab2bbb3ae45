// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for both the SDK command line and the
// stub server, plus a helper that binds the request's RayID to log entries.
//
// # Context Awareness
//
// The stub server tags every request with a RayID (see core/middleware/rayid).
// WithRayID extracts it from the Fiber context and attaches it to the log entry,
// so server logs can be correlated with the X-Request-ID the SDK transport sent.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Stub server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Warn("Unknown route", zap.String("path", c.Path()))
package logger
