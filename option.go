package fincode

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// HTTPDoer is an interface for HTTP operations (for testing).
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option configures the Client.
type Option func(*clientConfig) error

// clientConfig holds internal configuration.
type clientConfig struct {
	config     Config
	baseURL    string
	httpClient HTTPDoer
	logger     *slog.Logger
}

// WithEnvironment selects the test or live host.
// Default: EnvironmentTest
func WithEnvironment(environment Environment) Option {
	return func(c *clientConfig) error {
		c.config.Environment = environment
		return nil
	}
}

// WithAPIVersion sets the API-Version header sent with every request.
func WithAPIVersion(version string) Option {
	return func(c *clientConfig) error {
		c.config.Options.APIVersion = version
		return nil
	}
}

// WithProxy routes requests through the given proxy URL.
func WithProxy(proxy string) Option {
	return func(c *clientConfig) error {
		c.config.Options.Proxy = proxy
		return nil
	}
}

// WithProxyURL is WithProxy for an already parsed URL.
func WithProxyURL(u *url.URL) Option {
	return func(c *clientConfig) error {
		if u == nil {
			return errors.New("proxy URL cannot be nil")
		}
		c.config.Options.Proxy = u.String()
		return nil
	}
}

// WithTimeout sets the request timeout. Expiry surfaces as a
// *TransportError.
// Default: no timeout
func WithTimeout(d time.Duration) Option {
	return func(c *clientConfig) error {
		if d <= 0 {
			return errors.New("timeout must be positive")
		}
		c.config.Options.Timeout = d
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client. Proxy and timeout options are
// then the caller's responsibility.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *clientConfig) error {
		if client == nil {
			return errors.New("HTTP client cannot be nil")
		}
		c.httpClient = client
		return nil
	}
}

// WithBaseURL replaces the environment host, e.g. with a mock server.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) error {
		if url == "" {
			return errors.New("base URL cannot be empty")
		}
		c.baseURL = strings.TrimSuffix(url, "/")
		return nil
	}
}

// WithLogger sets the structured logger. Requests are logged at debug level.
// Default: discard
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		c.logger = logger
		return nil
	}
}
