package transport

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuawatkins04/fincode-go/internal/query"
)

func TestBaseURL_Selection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		environment string
		want        string
	}{
		{environment: "live", want: LiveBaseURL},
		{environment: "test", want: TestBaseURL},
		{environment: "", want: TestBaseURL},
		{environment: "production", want: TestBaseURL},
		{environment: "LIVE", want: TestBaseURL},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.environment, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BaseURL(tt.environment))
		})
	}
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    Config
		path   string
		params any
		want   string
	}{
		{
			name: "live host",
			cfg:  Config{Environment: "live"},
			path: "/v1/customers",
			want: "https://api.fincode.jp/v1/customers",
		},
		{
			name: "test host",
			cfg:  Config{Environment: "test"},
			path: "/v1/customers",
			want: "https://api.test.fincode.jp/v1/customers",
		},
		{
			name:   "query appended",
			cfg:    Config{Environment: "test"},
			path:   "/v1/payments",
			params: query.Params{}.Add("pay_type", "Card").Add("limit", 5),
			want:   "https://api.test.fincode.jp/v1/payments?pay_type=Card&limit=5",
		},
		{
			name:   "empty query adds no separator",
			cfg:    Config{Environment: "test"},
			path:   "/v1/payments",
			params: query.Params{}.Add("pay_type", nil),
			want:   "https://api.test.fincode.jp/v1/payments",
		},
		{
			name: "base url override",
			cfg:  Config{Environment: "live", BaseURL: "http://127.0.0.1:8080"},
			path: "/v1/plans/pl_1",
			want: "http://127.0.0.1:8080/v1/plans/pl_1",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := BuildURL(tt.cfg, tt.path, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildURL_KeyNotDefined(t *testing.T) {
	t.Parallel()

	_, err := BuildURL(Config{}, "/v1/payments", "Card")
	assert.ErrorIs(t, err, query.ErrKeyNotDefined)
}

func TestBuildURL_LiveHostPrefix(t *testing.T) {
	t.Parallel()

	got, err := BuildURL(Config{Environment: "live"}, "/v1/customers", nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, LiveBaseURL))
}

func TestBuildHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  Config
		h    Headers
		want map[string]string
	}{
		{
			name: "defaults",
			cfg:  Config{APIKey: "k", Environment: "test"},
			want: map[string]string{
				"Content-Type":  "application/json;charset=UTF-8",
				"Authorization": "Bearer k",
			},
		},
		{
			name: "api version and overrides",
			cfg:  Config{APIKey: "k", APIVersion: "20211001"},
			h:    Headers{IdempotencyKey: "idem-1", TenantShopID: "s_tenant"},
			want: map[string]string{
				"Content-Type":   "application/json;charset=UTF-8",
				"Authorization":  "Bearer k",
				"API-Version":    "20211001",
				"idempotent_key": "idem-1",
				"Tenant-Shop-Id": "s_tenant",
			},
		},
		{
			name: "content type replaced",
			cfg:  Config{APIKey: "k"},
			h:    Headers{ContentType: "multipart/form-data; boundary=xyz"},
			want: map[string]string{
				"Content-Type":  "multipart/form-data; boundary=xyz",
				"Authorization": "Bearer k",
			},
		},
		{
			name: "no api key",
			cfg:  Config{},
			want: map[string]string{
				"Content-Type": "application/json;charset=UTF-8",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, BuildHeaders(tt.cfg, tt.h))
		})
	}
}
