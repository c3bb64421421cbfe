package config

import (
	"strings"
	"testing"
)

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{name: "plain", base: "https://hooks.example.com", path: "webhook/test", want: "https://hooks.example.com/webhook/test"},
		{name: "trailing slash on base", base: "https://hooks.example.com/", path: "webhook/test", want: "https://hooks.example.com/webhook/test"},
		{name: "leading slash on path", base: "https://hooks.example.com", path: "/webhook/test", want: "https://hooks.example.com/webhook/test"},
		{name: "both slashes", base: "https://hooks.example.com/", path: "/webhook/test", want: "https://hooks.example.com/webhook/test"},
		{name: "base with path", base: "https://n8n.local/api/", path: "abc", want: "https://n8n.local/api/abc"},
		{name: "query kept as is", base: "https://h.example.com", path: "/hook?x=1", want: "https://h.example.com/hook?x=1"},
		{name: "inner slashes untouched", base: "https://h.example.com", path: "a//b", want: "https://h.example.com/a//b"},
		{name: "empty base", base: "", path: "/webhook", want: ""},
		{name: "empty path", base: "https://h.example.com", path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveEndpoint(tt.base, tt.path); got != tt.want {
				t.Errorf("ResolveEndpoint(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
			}
		})
	}
}

func TestResolveEndpointSingleSlash(t *testing.T) {
	bases := []string{"https://h.example.com", "https://h.example.com/"}
	paths := []string{"hook", "/hook"}
	for _, base := range bases {
		for _, path := range paths {
			got := ResolveEndpoint(base, path)
			rest := strings.TrimPrefix(got, "https://")
			if strings.Contains(rest, "//") {
				t.Errorf("ResolveEndpoint(%q, %q) = %q has a double slash", base, path, got)
			}
			if !strings.HasSuffix(got, "h.example.com/hook") {
				t.Errorf("ResolveEndpoint(%q, %q) = %q", base, path, got)
			}
		}
	}
}

func TestWebhookConfigEndpoint(t *testing.T) {
	cfg := &WebhookConfig{
		BaseURL:    "https://h.example.com/",
		PathTest:   "webhook-test/clips",
		PathActive: "/webhook/clips",
	}
	if got := cfg.Endpoint(false); got != "https://h.example.com/webhook-test/clips" {
		t.Errorf("test endpoint = %q", got)
	}
	if got := cfg.Endpoint(true); got != "https://h.example.com/webhook/clips" {
		t.Errorf("active endpoint = %q", got)
	}

	cfg.PathActive = ""
	if got := cfg.Endpoint(true); got != "" {
		t.Errorf("active endpoint without path = %q, want empty", got)
	}
	if got := cfg.Endpoint(false); got == "" {
		t.Error("test endpoint should still resolve")
	}
}

func TestGetWebhookConfigMissing(t *testing.T) {
	t.Setenv(EnvWebhookURL, "https://h.example.com")
	t.Setenv(EnvWebhookPathTest, "")
	t.Setenv(EnvWebhookPathActive, "/live")

	cfg := GetWebhookConfig()
	missing := cfg.Missing()
	if len(missing) != 1 || missing[0] != EnvWebhookPathTest {
		t.Errorf("Missing() = %v, want [%s]", missing, EnvWebhookPathTest)
	}
	cfg.LogMissing()
}

func TestGetServerConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("COPY_FEEDBACK_MS", "not-a-number")

	cfg := GetServerConfig()
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.CopyFeedback.Milliseconds() != 1200 {
		t.Errorf("CopyFeedback = %v, want 1.2s", cfg.CopyFeedback)
	}
}
