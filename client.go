package fincode

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/joshuawatkins04/fincode-go/internal/transport"
	"github.com/joshuawatkins04/fincode-go/internal/validation"
)

// Client is the fincode API client. Its configuration is fixed at
// construction; clients with different keys or environments can be used side
// by side.
type Client struct {
	transport *transport.Transport
	config    Config
	logger    *slog.Logger

	Accounts        *AccountService
	Cards           *CardService
	Customers       *CustomerService
	PaymentBulks    *PaymentBulkService
	PaymentMethods  *PaymentMethodService
	Payments        *PaymentService
	Plans           *PlanService
	Platforms       *PlatformService
	Sessions        *SessionService
	Subscriptions   *SubscriptionService
	Tenants         *TenantService
	WebhookSettings *WebhookSettingService
}

// NewClient creates a new fincode client using the test environment unless
// WithEnvironment says otherwise.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	return NewClientFromConfig(Config{APIKey: apiKey, Environment: EnvironmentTest}, opts...)
}

// NewClientFromConfig creates a client from a Config, e.g. one returned by
// LoadConfig. Options are applied on top of cfg.
func NewClientFromConfig(cfg Config, opts ...Option) (*Client, error) {
	config := &clientConfig{config: cfg}
	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, &ConfigurationError{Message: "invalid option", Err: err}
		}
	}
	cfg = config.config

	if err := validation.ValidateAPIKey(cfg.APIKey); err != nil {
		return nil, &ConfigurationError{Message: "invalid API key", Err: err}
	}
	if err := validation.ValidateEnvironment(string(cfg.Environment)); err != nil {
		return nil, &ConfigurationError{Message: "invalid environment", Err: err}
	}
	if err := validation.ValidateAPIVersion(cfg.Options.APIVersion); err != nil {
		return nil, &ConfigurationError{Message: "invalid API version", Err: err}
	}
	if err := validation.ValidateTimeout(cfg.Options.Timeout); err != nil {
		return nil, &ConfigurationError{Message: "invalid timeout", Err: err}
	}
	proxyURL, err := validation.ValidateProxy(cfg.Options.Proxy)
	if err != nil {
		return nil, &ConfigurationError{Message: "invalid proxy", Err: err}
	}

	logger := config.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.Environment == EnvironmentLive && validation.IsTestKey(cfg.APIKey) ||
		cfg.Environment == EnvironmentTest && validation.IsLiveKey(cfg.APIKey) {
		logger.Warn("fincode API key does not match environment", "environment", string(cfg.Environment))
	}

	httpClient := config.httpClient
	if httpClient == nil {
		httpClient = newHTTPClient(cfg.Options, proxyURL)
	}

	c := &Client{
		transport: &transport.Transport{
			Config: transport.Config{
				APIKey:      cfg.APIKey,
				Environment: string(cfg.Environment),
				APIVersion:  cfg.Options.APIVersion,
				BaseURL:     config.baseURL,
			},
			HTTPClient: httpClient,
			Logger:     logger,
		},
		config: cfg,
		logger: logger,
	}

	c.Accounts = &AccountService{client: c}
	c.Cards = &CardService{client: c}
	c.Customers = &CustomerService{client: c}
	c.PaymentBulks = &PaymentBulkService{client: c}
	c.PaymentMethods = &PaymentMethodService{client: c}
	c.Payments = &PaymentService{client: c}
	c.Plans = &PlanService{client: c}
	c.Platforms = &PlatformService{client: c}
	c.Sessions = &SessionService{client: c}
	c.Subscriptions = &SubscriptionService{client: c}
	c.Tenants = &TenantService{client: c}
	c.WebhookSettings = &WebhookSettingService{client: c}

	return c, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// BaseURL returns the host requests are sent to.
func (c *Client) BaseURL() string {
	if c.transport.Config.BaseURL != "" {
		return c.transport.Config.BaseURL
	}
	return transport.BaseURL(c.transport.Config.Environment)
}

func newHTTPClient(opts Options, proxyURL *url.URL) *http.Client {
	base := http.DefaultTransport.(*http.Transport).Clone()
	if proxyURL != nil {
		base.Proxy = http.ProxyURL(proxyURL)
	}
	return &http.Client{
		Transport: base,
		Timeout:   opts.Timeout,
	}
}
