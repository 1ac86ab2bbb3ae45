// Package server holds the stub HTTP server configuration.
//
// The stub server (feature/stub) fakes the storage REST service for local SDK
// development. This package only defines where it listens, the API key it
// demands and the fixture file it loads; startup lives in cmd/stub.go.
package server
