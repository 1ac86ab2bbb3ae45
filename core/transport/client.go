package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the per-request id to the service.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody limits how much of a non-envelope error body is echoed back.
const maxErrorBody = 512

// Client is the HTTP implementation of Transport.
type Client struct {
	baseURL string
	apiKey  string
	doer    Doer
	logger  *zap.Logger
}

var _ Transport = (*Client)(nil)

// NewClient creates a REST client backed by a net/http client built from cfg.
func NewClient(cfg Config, logger *zap.Logger) (*Client, error) {
	return NewClientWithDoer(cfg, cfg.NewHTTPClient(), logger)
}

// NewClientWithDoer creates a REST client that sends requests through doer.
func NewClientWithDoer(cfg Config, doer Doer, logger *zap.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		doer:    doer,
		logger:  logger,
	}, nil
}

// Post sends body as JSON to path and decodes the envelope. Every failure is
// reported inside the returned envelope.
func (c *Client) Post(ctx context.Context, path string, body any) *Envelope {
	requestID := uuid.NewString()
	l := c.logger.With(zap.String("path", path), zap.String("request_id", requestID))
	start := time.Now()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return c.fail(l, NewErrorEnvelope(CodeInvalidRequest, fmt.Sprintf("failed to marshal request body: %v", err), 0))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return c.fail(l, NewErrorEnvelope(CodeInvalidRequest, fmt.Sprintf("failed to create request: %v", err), 0))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return c.fail(l, NewErrorEnvelope(CodeTransport, fmt.Sprintf("request failed: %v", err), 0))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(l, NewErrorEnvelope(CodeTransport, fmt.Sprintf("failed to read response: %v", err), resp.StatusCode))
	}

	l.Debug("Storage request completed",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return c.decode(l, resp.StatusCode, raw)
}

func (c *Client) decode(l *zap.Logger, status int, raw []byte) *Envelope {
	success := status >= 200 && status < 300

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if success {
			return c.fail(l, NewErrorEnvelope(CodeInvalidResponse, fmt.Sprintf("failed to decode response: %v", err), status))
		}
		return c.fail(l, NewErrorEnvelope(CodeHTTP, truncate(raw, status), status))
	}

	if env.Errors != nil {
		if env.Errors.Status == 0 && !success {
			env.Errors.Status = status
		}
		l.Warn("Storage service returned errors", zap.Error(env.Errors))
		return &env
	}

	if !success {
		return c.fail(l, NewErrorEnvelope(CodeHTTP, truncate(raw, status), status))
	}

	return &env
}

func (c *Client) fail(l *zap.Logger, env *Envelope) *Envelope {
	l.Warn("Storage request failed", zap.Error(env.Errors))
	return env
}

func truncate(raw []byte, status int) string {
	msg := strings.TrimSpace(string(raw))
	if msg == "" {
		return http.StatusText(status)
	}
	if len(msg) > maxErrorBody {
		return msg[:maxErrorBody]
	}
	return msg
}
