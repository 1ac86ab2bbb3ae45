package transport

import (
	"crypto/tls"
	"net"
	"net/http"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var schemePattern = regexp.MustCompile(`^https?://[^/]+`)

// Config holds configuration for the storage REST client.
type Config struct {
	// BaseURL is the scheme and host of the storage service, without the API path.
	BaseURL string `mapstructure:"base_url" default:"http://localhost:8080"`
	// APIKey is sent as a Bearer token on every request. Empty disables the header.
	APIKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds each request, including reading the response.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// TLSVerify controls certificate verification for https endpoints.
	TLSVerify bool `mapstructure:"tls_verify" default:"true"`
}

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL,
			validation.Required,
			validation.Match(schemePattern).Error("must be an http or https URL"),
		),
		validation.Field(&c.TimeoutSeconds, validation.Min(0)),
	)
}

// Timeout returns the request timeout, defaulting to 30 seconds.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// NewHTTPClient creates an HTTP client with strict timeouts for this configuration.
func (c *Config) NewHTTPClient() *http.Client {
	timeout := c.Timeout()

	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	if !c.TLSVerify {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
