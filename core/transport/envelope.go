package transport

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Error codes assigned by the transport itself. Codes reported by the remote
// service are passed through untouched.
const (
	CodeTransport       = "transport_error"
	CodeInvalidRequest  = "invalid_request"
	CodeInvalidResponse = "invalid_response"
	CodeHTTP            = "http_error"
)

// Envelope is the response wrapper returned by every storage endpoint.
// Exactly one of Data and Errors is expected to be set.
type Envelope struct {
	Data   json.RawMessage `json:"data"`
	Errors *ErrorInfo      `json:"errors"`
}

// ErrorInfo describes a failure reported by the service or the transport.
type ErrorInfo struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

func (e *ErrorInfo) Error() string {
	switch {
	case e.Code != "" && e.Status != 0:
		return fmt.Sprintf("%s (status %d): %s", e.Code, e.Status, e.Message)
	case e.Code != "":
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	default:
		return e.Message
	}
}

// HasData reports whether the envelope carries a non-null data payload.
func (e *Envelope) HasData() bool {
	trimmed := bytes.TrimSpace(e.Data)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

// Err returns the envelope's errors as an error value, or nil.
func (e *Envelope) Err() error {
	if e.Errors == nil {
		return nil
	}
	return e.Errors
}

// NewDataEnvelope wraps v as the data of a successful envelope.
func NewDataEnvelope(v any) (*Envelope, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope data: %w", err)
	}
	return &Envelope{Data: data}, nil
}

// NewErrorEnvelope builds a failed envelope.
func NewErrorEnvelope(code, message string, status int) *Envelope {
	return &Envelope{Errors: &ErrorInfo{Code: code, Message: message, Status: status}}
}
