package mindly

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the SDK configuration, parsed from MINDLY_-prefixed
// environment variables. Flags and options layered on top win.
type Config struct {
	BaseURL     string        `envconfig:"BASE_URL" default:"http://localhost:8080"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	PageSize    int           `envconfig:"PAGE_SIZE" default:"50"`
	Debug       bool          `envconfig:"DEBUG" default:"false"`
}

// ConfigFromEnv loads Config from the environment.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("mindly", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
