// Package middleware contains HTTP middleware for the stub server.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: Validates the Bearer API key the SDK transport sends, answering
//     rejected requests with an error envelope.
//   - RayID: Adopts the X-Request-ID sent by the SDK transport (or generates
//     one), storing it in the context and echoing it in the response headers.
//
// These middleware components are designed to be registered globally or per-route group
// in the stub server setup.
package middleware
