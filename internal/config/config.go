package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every environment-derived setting the server needs. It is
// parsed once at process start and passed into constructors; nothing reads
// the process environment after that.
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	Region      string `env:"DEPLOY_REGION" envDefault:"unknown"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Pooled and direct connection strings. The pooled URL is preferred;
	// the direct one exists for hosted Postgres setups (e.g. Neon) that
	// expose both.
	DatabaseURL       string `env:"DATABASE_URL"`
	DirectDatabaseURL string `env:"DATABASE_URL_DIRECT"`

	// Admin credentials have no defaults. If either is empty, admin
	// authentication always fails.
	AdminEmail  string `env:"ADMIN_EMAIL"`
	AdminSecret string `env:"ADMIN_SECRET"`

	UploadDir     string `env:"UPLOAD_DIR" envDefault:"./uploads"`
	UploadBaseURL string `env:"UPLOAD_BASE_URL" envDefault:"/uploads"`

	// Requests per minute per client IP on the public contact endpoint.
	ContactRateLimit int `env:"CONTACT_RATE_LIMIT" envDefault:"10"`
}

// Load reads .env (if present) and parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}

// ConnString returns the connection string to use: the pooled URL when set,
// otherwise the direct one. Empty means no database is configured.
func (c *Config) ConnString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DirectDatabaseURL
}
