package fincode

import (
	"time"

	"github.com/caarlos0/env/v6"
)

// Environment selects the API host.
type Environment string

// Environments accepted by NewClient.
const (
	EnvironmentTest Environment = "test"
	EnvironmentLive Environment = "live"
)

// Options are the optional transport settings of a Config.
type Options struct {
	// APIVersion is sent as the API-Version header when set.
	APIVersion string `env:"FINCODE_API_VERSION"`

	// Proxy is the URL of an HTTP proxy used for every request.
	Proxy string `env:"FINCODE_PROXY"`

	// Timeout bounds each request. Zero means no timeout.
	Timeout time.Duration `env:"FINCODE_TIMEOUT"`
}

// Config is the configuration shared by every resource of a Client. A Client
// keeps its own copy; changing a Config after NewClientFromConfig has no
// effect on the client.
type Config struct {
	// APIKey is the secret key sent as a bearer token.
	APIKey string `env:"FINCODE_API_KEY,required"`

	// Environment selects the test or live host.
	Environment Environment `env:"FINCODE_ENVIRONMENT" envDefault:"test"`

	// Options contains optional transport settings.
	Options Options
}

// LoadConfig fills a Config from FINCODE_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, &ConfigurationError{Message: "load environment", Err: err}
	}
	return cfg, nil
}
