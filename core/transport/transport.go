package transport

import (
	"context"
	"net/http"
)

// Transport sends a request body to a REST path and returns the envelope.
type Transport interface {
	// Post issues a POST to path. A nil body sends no request body.
	Post(ctx context.Context, path string, body any) *Envelope
}

// Doer executes a prepared HTTP request. *http.Client satisfies it, and so
// does the in-process stub server.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}
