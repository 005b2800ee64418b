package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"api": map[string]any{
			"baseUrl": "http://localhost:8000",
		},
		"auth": map[string]any{
			"devSecret": "",
			"tokenTtl":  "24h",
		},
		"session": map[string]any{
			"tokenPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "API_BASEURL", want: "api.baseUrl"},
		{envKey: "AUTH_DEVSECRET", want: "auth.devSecret"},
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenTtl"},
		{envKey: "SESSION_TOKENPATH", want: "session.tokenPath"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	if cfg.API.BaseURL != defaultBaseURL {
		t.Fatalf("BaseURL = %q, want %q", cfg.API.BaseURL, defaultBaseURL)
	}
	if cfg.API.Timeout != defaultTimeout {
		t.Fatalf("Timeout = %v, want %v", cfg.API.Timeout, defaultTimeout)
	}
	if cfg.Auth.Mode != AuthModeRemote {
		t.Fatalf("Mode = %q, want %q", cfg.Auth.Mode, AuthModeRemote)
	}
}
