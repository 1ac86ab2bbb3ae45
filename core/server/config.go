package server

import "net"

// Config holds configuration for the stub HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// Fixtures is an optional YAML file with scripted responses per route.
	Fixtures string `mapstructure:"fixtures" default:""`
}

// Address returns the listen address for the server.
func (c Config) Address() string {
	port := c.Port
	if port == "" {
		port = "8080"
	}
	return net.JoinHostPort(c.Host, port)
}
