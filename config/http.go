package config

import "time"

const minShutdownTimeout = time.Second

// HTTPConfig contains HTTP server configuration. Each enabled service binds
// its own address so the services can be deployed separately or together.
type HTTPConfig struct {
	// UserAddr is the bind address for the user service.
	UserAddr string `env:"USER_HTTP_ADDR" envDefault:":8001"`

	// CatalogAddr is the bind address for the catalog service.
	CatalogAddr string `env:"CATALOG_HTTP_ADDR" envDefault:":8002"`

	// PlaybackAddr is the bind address for the playback service.
	PlaybackAddr string `env:"PLAYBACK_HTTP_ADDR" envDefault:":8003"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Sanitize applies guardrails to HTTP configuration values.
func (h *HTTPConfig) Sanitize() {
	if h.ShutdownTimeout < minShutdownTimeout {
		h.ShutdownTimeout = minShutdownTimeout
	}
}
