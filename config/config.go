package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// Port the HTTP server listens on
	Port int `env:"PORT" envDefault:"8000"`

	// Path of the SQLite database file
	DatabasePath string `env:"DATABASE_PATH" envDefault:"realestate.db"`

	// Origins allowed to call the API from a browser
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000"`

	// Reverse proxies whose X-Forwarded-For is trusted; empty trusts none
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Optional JSON file of properties loaded into an empty catalog at startup
	SeedFile string `env:"SEED_FILE"`

	RateLimit struct {
		// Inquiries a single client may submit per minute
		InquiriesPerMinute int `env:"RATE_LIMIT_INQUIRIES_PER_MINUTE" envDefault:"10"`

		Burst int `env:"RATE_LIMIT_BURST" envDefault:"5"`
	}

	// Buffered inquiry notifications before new ones are dropped
	InquiryQueueSize int `env:"INQUIRY_QUEUE_SIZE" envDefault:"100"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database path must not be empty")
	}
	if c.RateLimit.InquiriesPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d/min burst %d",
			c.RateLimit.InquiriesPerMinute, c.RateLimit.Burst)
	}
	if c.InquiryQueueSize <= 0 {
		return fmt.Errorf("inquiry queue size must be positive, got %d", c.InquiryQueueSize)
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
