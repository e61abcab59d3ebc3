package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuawatkins04/fincode-go"
)

func testEnv(stdout, stderr *bytes.Buffer) *env {
	return &env{
		Stdout: stdout,
		Stderr: stderr,
		LoadConfig: func() (fincode.Config, error) {
			return fincode.Config{APIKey: "sk_test_cli", Environment: fincode.EnvironmentTest}, nil
		},
	}
}

func run(t *testing.T, e *env, args ...string) error {
	t.Helper()
	cmd := newRootCmd(e)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "interrupt", err: fmt.Errorf("wrapped: %w", context.Canceled), want: ExitInterrupt},
		{name: "usage", err: errors.New(`unknown flag: --nope`), want: ExitUsage},
		{name: "configuration", err: &fincode.ConfigurationError{Message: "invalid API key"}, want: ExitConfig},
		{name: "validation", err: fmt.Errorf("classify: %w", &fincode.ValidationError{Field: "error_code"}), want: ExitValidation},
		{name: "provider", err: &fincode.ProviderError{Status: 400}, want: ExitProvider},
		{name: "transport", err: &fincode.TransportError{Message: fincode.MessageFetchFailed}, want: ExitTransport},
		{name: "other", err: errors.New("boom"), want: ExitGeneral},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func TestClassifyCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run(t, testEnv(&stdout, &stderr), "classify", "E9994001001", "E9993134002")

	require.NoError(t, err)
	assert.Equal(t, "E9994001001\tAUTH_ERROR\nE9993134002\tPAYMENT_ERROR\n", stdout.String())
}

func TestClassifyCommand_InvalidCode(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := run(t, testEnv(&stdout, &stderr), "classify", "E123")

	require.Error(t, err)
	assert.Equal(t, ExitValidation, exitCode(err))
}

func TestCustomersList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/customers", r.URL.Path)
		assert.Equal(t, "limit=2&sort=created%20desc", r.URL.RawQuery)
		assert.Equal(t, "Bearer sk_test_cli", r.Header.Get("Authorization"))
		w.Write([]byte(`{"total_count":1,"list":[{"id":"c_1","name":"Taro"}]}`))
	}))
	defer server.Close()

	var stdout, stderr bytes.Buffer
	err := run(t, testEnv(&stdout, &stderr),
		"--base-url", server.URL, "customers", "list", "--limit", "2", "--sort", "created:desc")

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `"id": "c_1"`)
}

func TestPaymentsGet_Concurrent(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "Konbini", r.URL.Query().Get("pay_type"))
		id := strings.TrimPrefix(r.URL.Path, "/v1/payments/")
		fmt.Fprintf(w, `{"id":%q,"pay_type":"Konbini"}`, id)
	}))
	defer server.Close()

	var stdout, stderr bytes.Buffer
	err := run(t, testEnv(&stdout, &stderr),
		"--base-url", server.URL, "payments", "get", "--pay-type", "Konbini", "o_1", "o_2", "o_3")

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	out := stdout.String()
	assert.Less(t, strings.Index(out, "o_1"), strings.Index(out, "o_2"))
	assert.Less(t, strings.Index(out, "o_2"), strings.Index(out, "o_3"))
}

func TestPaymentsGet_ProviderError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":[{"error_code":"E0101000005","error_message":"not found"}]}`))
	}))
	defer server.Close()

	var stdout, stderr bytes.Buffer
	err := run(t, testEnv(&stdout, &stderr), "--base-url", server.URL, "payments", "get", "o_missing")

	require.Error(t, err)
	assert.Equal(t, ExitProvider, exitCode(err))
	assert.Contains(t, err.Error(), "payment o_missing")
}

func TestRequestCommand(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/customers", r.URL.Path)
		assert.Equal(t, "key-1", r.Header.Get("idempotent_key"))
		w.Write([]byte(`{"id":"c_new"}`))
	}))
	defer server.Close()

	var stdout, stderr bytes.Buffer
	err := run(t, testEnv(&stdout, &stderr), "--base-url", server.URL,
		"request", "post", "/v1/customers", "--data", `{"name":"Taro"}`, "--idempotency-key", "key-1")

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"c_new"}`, stdout.String())
}

func TestRequestCommand_UsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "bad method", args: []string{"request", "PATCH", "/v1/customers"}},
		{name: "bad body", args: []string{"request", "POST", "/v1/customers", "--data", "{"}},
		{name: "bad param", args: []string{"request", "GET", "/v1/customers", "--param", "limit"}},
		{name: "missing path", args: []string{"request", "GET"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			err := run(t, testEnv(&stdout, &stderr), tt.args...)

			require.Error(t, err)
			assert.Equal(t, ExitUsage, exitCode(err))
		})
	}
}

func TestMissingAPIKey(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	e := testEnv(&stdout, &stderr)
	e.LoadConfig = func() (fincode.Config, error) {
		return fincode.Config{}, &fincode.ConfigurationError{Message: "load environment"}
	}

	err := run(t, e, "customers", "get", "c_1")

	require.Error(t, err)
	assert.Equal(t, ExitConfig, exitCode(err))
}

func TestParseSorts(t *testing.T) {
	t.Parallel()

	sorts, err := parseSorts([]string{"created:desc", "amount"})
	require.NoError(t, err)
	assert.Equal(t, []fincode.Sort{
		{Field: "created", Order: fincode.OrderDesc},
		{Field: "amount", Order: fincode.OrderAsc},
	}, sorts)

	_, err = parseSorts([]string{"created:sideways"})
	assert.Error(t, err)
}
