package validation

import (
	"testing"
)

func TestValidateAPIKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		apiKey  string
		wantErr error
	}{
		{
			name:    "valid test secret key",
			apiKey:  "sk_test_1234567890abcdef",
			wantErr: nil,
		},
		{
			name:    "valid live secret key",
			apiKey:  "sk_live_1234567890abcdef",
			wantErr: nil,
		},
		{
			name:    "key without known prefix",
			apiKey:  "m_test_abc",
			wantErr: nil,
		},
		{
			name:    "empty key",
			apiKey:  "",
			wantErr: ErrAPIKeyEmpty,
		},
		{
			name:    "trailing newline",
			apiKey:  "sk_test_abc\n",
			wantErr: ErrAPIKeyWhitespace,
		},
		{
			name:    "inner space",
			apiKey:  "sk_test abc",
			wantErr: ErrAPIKeyWhitespace,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateAPIKey(tt.apiKey)
			if err != tt.wantErr {
				t.Errorf("ValidateAPIKey(%q) = %v, want %v", tt.apiKey, err, tt.wantErr)
			}
		})
	}
}

func TestIsLiveKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		apiKey string
		want   bool
	}{
		{"sk_live_abc", true},
		{"sk_test_abc", false},
		{"", false},
		{"sk_live", false},
	}

	for _, tt := range tests {
		if got := IsLiveKey(tt.apiKey); got != tt.want {
			t.Errorf("IsLiveKey(%q) = %v, want %v", tt.apiKey, got, tt.want)
		}
	}
}

func TestIsTestKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		apiKey string
		want   bool
	}{
		{"sk_test_abc", true},
		{"sk_live_abc", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsTestKey(tt.apiKey); got != tt.want {
			t.Errorf("IsTestKey(%q) = %v, want %v", tt.apiKey, got, tt.want)
		}
	}
}
