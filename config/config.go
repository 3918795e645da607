package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config
// files for details on available environment variables:
//   - auth.go: Token and password hashing configuration
//   - database.go: Database and Redis configuration
//   - http.go: HTTP server configuration
//   - services.go: Service mode configuration
type AppConfig struct {
	// IsDev controls development mode behavior (verbose logging, etc.)
	// Set DEV=true for development mode.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Authentication configuration
	Auth AuthConfig

	// Database configuration
	Postgres DBConfig    `envPrefix:"DB_"`
	Redis    RedisConfig `envPrefix:"REDIS_"`

	// HTTP server configuration
	HTTP HTTPConfig

	// Services is the comma-delimited list of services to run in this
	// process. Each enabled service binds its own listener.
	Services string `env:"SERVICES" envDefault:"user,catalog,playback"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.HTTP.Sanitize()
}

// GetEnabledServices returns the enabled services based on the Services field.
func (c *AppConfig) GetEnabledServices() (map[ServiceMode]bool, error) {
	return ParseServices(c.Services)
}

// IsUserServiceEnabled returns true if the user service is enabled.
func (c *AppConfig) IsUserServiceEnabled() bool {
	return c.isEnabled(ServiceModeUser)
}

// IsCatalogServiceEnabled returns true if the catalog service is enabled.
func (c *AppConfig) IsCatalogServiceEnabled() bool {
	return c.isEnabled(ServiceModeCatalog)
}

// IsPlaybackServiceEnabled returns true if the playback service is enabled.
func (c *AppConfig) IsPlaybackServiceEnabled() bool {
	return c.isEnabled(ServiceModePlayback)
}

func (c *AppConfig) isEnabled(mode ServiceMode) bool {
	services, err := c.GetEnabledServices()
	if err != nil {
		return false
	}
	return services[mode]
}
