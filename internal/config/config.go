package config

import (
	"fmt"
	"time"

	"github.com/utafrali/storefront/pkg/config"
)

// Config carries all runtime settings for the storefront service, loaded
// from the environment.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	HTTPPort        int           `env:"HTTP_PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// Session-scoped cart, favorites and checkout state expires after
	// inactivity. Orders never expire.
	SessionTTL time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	CatalogBaseURL string        `env:"CATALOG_BASE_URL" envDefault:"http://localhost:8000/api"`
	CatalogTimeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"10s"`

	FreeShippingThresholdCents int64 `env:"FREE_SHIPPING_THRESHOLD_CENTS" envDefault:"100000"`
	ShippingFlatFeeCents       int64 `env:"SHIPPING_FLAT_FEE_CENTS" envDefault:"2999"`
	TaxRateBasisPoints         int64 `env:"TAX_RATE_BASIS_POINTS" envDefault:"800"`

	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`

	TracingEnabled  bool    `env:"TRACING_ENABLED" envDefault:"false"`
	TracingEndpoint string  `env:"TRACING_ENDPOINT" envDefault:"localhost:4318"`
	TracingSample   float64 `env:"TRACING_SAMPLE_RATIO" envDefault:"1.0"`

	PprofAllowedCIDRs []string `env:"PPROF_ALLOWED_CIDRS" envSeparator:"," envDefault:"127.0.0.1/32"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTPPort)
	}
	if c.FreeShippingThresholdCents < 0 {
		return fmt.Errorf("FREE_SHIPPING_THRESHOLD_CENTS must not be negative")
	}
	if c.ShippingFlatFeeCents < 0 {
		return fmt.Errorf("SHIPPING_FLAT_FEE_CENTS must not be negative")
	}
	if c.TaxRateBasisPoints < 0 || c.TaxRateBasisPoints > 10000 {
		return fmt.Errorf("TAX_RATE_BASIS_POINTS must be between 0 and 10000")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
