package validation

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestValidateEnvironment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env       string
		wantErr   bool
		wantField string
	}{
		{env: "test"},
		{env: "live"},
		{env: "", wantErr: true, wantField: "environment"},
		{env: "production", wantErr: true, wantField: "environment"},
		{env: "Live", wantErr: true, wantField: "environment"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()

			err := ValidateEnvironment(tt.env)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateEnvironment(%q) error = %v, wantErr %v", tt.env, err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FieldError, got %T", err)
			}
			if fe.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", fe.Field, tt.wantField)
			}
		})
	}
}

func TestValidateAPIVersion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		version string
		wantErr bool
	}{
		{version: "", wantErr: false},
		{version: "20211001", wantErr: false},
		{version: "2021-10-01", wantErr: true},
		{version: "v1", wantErr: true},
	}

	for _, tt := range tests {
		if err := ValidateAPIVersion(tt.version); (err != nil) != tt.wantErr {
			t.Errorf("ValidateAPIVersion(%q) error = %v, wantErr %v", tt.version, err, tt.wantErr)
		}
	}
}

func TestValidateProxy(t *testing.T) {
	t.Parallel()

	u, err := ValidateProxy("")
	if err != nil || u != nil {
		t.Errorf("ValidateProxy(\"\") = %v, %v; want nil, nil", u, err)
	}

	u, err = ValidateProxy("http://proxy.internal:3128")
	if err != nil {
		t.Fatalf("ValidateProxy() error = %v", err)
	}
	if u.Host != "proxy.internal:3128" {
		t.Errorf("Host = %q, want proxy.internal:3128", u.Host)
	}

	for _, bad := range []string{"proxy.internal:3128", "://bad", "/relative"} {
		if _, err := ValidateProxy(bad); err == nil {
			t.Errorf("ValidateProxy(%q) expected error", bad)
		}
	}
}

func TestValidateTimeout(t *testing.T) {
	t.Parallel()

	if err := ValidateTimeout(0); err != nil {
		t.Errorf("ValidateTimeout(0) = %v", err)
	}
	if err := ValidateTimeout(5 * time.Second); err != nil {
		t.Errorf("ValidateTimeout(5s) = %v", err)
	}
	if err := ValidateTimeout(-time.Second); err == nil {
		t.Error("ValidateTimeout(-1s) expected error")
	}
}

func TestFieldError_Truncates(t *testing.T) {
	t.Parallel()

	err := ValidateEnvironment(strings.Repeat("x", 80))
	if !strings.HasSuffix(err.Error(), "...)") {
		t.Errorf("expected truncated value, got %q", err.Error())
	}
}
