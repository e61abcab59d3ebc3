package transport

import (
	"fmt"

	"github.com/joshuawatkins04/fincode-go/internal/query"
)

// API hosts.
const (
	LiveBaseURL = "https://api.fincode.jp"
	TestBaseURL = "https://api.test.fincode.jp"
)

// EnvironmentLive selects LiveBaseURL. Every other value selects TestBaseURL.
const EnvironmentLive = "live"

// Header names sent to the API. They are written verbatim, not canonicalized.
const (
	HeaderContentType    = "Content-Type"
	HeaderAPIVersion     = "API-Version"
	HeaderAuthorization  = "Authorization"
	HeaderIdempotencyKey = "idempotent_key"
	HeaderTenantShopID   = "Tenant-Shop-Id"
)

// ContentTypeJSON is the default request content type.
const ContentTypeJSON = "application/json;charset=UTF-8"

// Config is the subset of client configuration needed to build requests.
type Config struct {
	APIKey      string
	Environment string
	APIVersion  string
	// BaseURL overrides the host derived from Environment when non-empty.
	BaseURL string
}

// Headers are per-call header overrides.
type Headers struct {
	IdempotencyKey string
	TenantShopID   string
	ContentType    string
}

// BaseURL returns the API host for the given environment.
func BaseURL(environment string) string {
	if environment == EnvironmentLive {
		return LiveBaseURL
	}
	return TestBaseURL
}

// BuildURL joins the host, the caller-escaped path and the encoded params.
func BuildURL(cfg Config, path string, params any) (string, error) {
	base := cfg.BaseURL
	if base == "" {
		base = BaseURL(cfg.Environment)
	}

	qs, err := query.Encode(params)
	if err != nil {
		return "", fmt.Errorf("encode query: %w", err)
	}
	if qs == "" {
		return base + path, nil
	}
	return base + path + "?" + qs, nil
}

// BuildHeaders returns the header set for a request.
func BuildHeaders(cfg Config, h Headers) map[string]string {
	headers := map[string]string{
		HeaderContentType: ContentTypeJSON,
	}
	if cfg.APIVersion != "" {
		headers[HeaderAPIVersion] = cfg.APIVersion
	}
	if cfg.APIKey != "" {
		headers[HeaderAuthorization] = "Bearer " + cfg.APIKey
	}
	if h.IdempotencyKey != "" {
		headers[HeaderIdempotencyKey] = h.IdempotencyKey
	}
	if h.TenantShopID != "" {
		headers[HeaderTenantShopID] = h.TenantShopID
	}
	if h.ContentType != "" {
		headers[HeaderContentType] = h.ContentType
	}
	return headers
}
