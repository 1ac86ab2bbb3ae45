// Package transport performs the HTTP calls behind the storage SDK.
//
// Every request is a POST against a fixed REST path and every response is the
// uniform {data, errors} Envelope. The Transport interface is what the storage
// facade depends on; Client is the production implementation built on
// net/http, and mocks.Transport is the testify mock used in unit tests.
//
// # Failure Model
//
// A Transport never returns a Go error. Network failures, non-2xx responses and
// undecodable bodies are folded into Envelope.Errors with one of the Code*
// constants, so callers handle every remote outcome the same way.
//
// # Usage
//
//	client, err := transport.NewClient(cfg.Client, log)
//	env := client.Post(ctx, "/_api/rest/v1/storage/stats", nil)
//	if err := env.Err(); err != nil {
//	    log.Warn("stats failed", zap.Error(err))
//	}
package transport
