package config

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	EnvWebhookURL        = "WEBHOOK_URL"
	EnvWebhookPathTest   = "WEBHOOK_PATH_TEST"
	EnvWebhookPathActive = "WEBHOOK_PATH_ACTIVE"
)

// WebhookConfig holds the workflow webhook location. The base URL is shared,
// the test and active workflows differ only by path.
type WebhookConfig struct {
	BaseURL    string `json:"base_url"`
	PathTest   string `json:"path_test"`
	PathActive string `json:"path_active"`
}

// GetWebhookConfig returns webhook configuration from environment variables
func GetWebhookConfig() *WebhookConfig {
	return &WebhookConfig{
		BaseURL:    os.Getenv(EnvWebhookURL),
		PathTest:   os.Getenv(EnvWebhookPathTest),
		PathActive: os.Getenv(EnvWebhookPathActive),
	}
}

// SelectPath returns the path suffix of the chosen workflow
func (c *WebhookConfig) SelectPath(useActive bool) string {
	if useActive {
		return c.PathActive
	}
	return c.PathTest
}

// Endpoint returns the absolute webhook URL of the chosen workflow, or "" when
// the base URL or the selected path is not configured.
func (c *WebhookConfig) Endpoint(useActive bool) string {
	return ResolveEndpoint(c.BaseURL, c.SelectPath(useActive))
}

// Missing lists the environment variables that are not set
func (c *WebhookConfig) Missing() []string {
	var missing []string
	if c.BaseURL == "" {
		missing = append(missing, EnvWebhookURL)
	}
	if c.PathTest == "" {
		missing = append(missing, EnvWebhookPathTest)
	}
	if c.PathActive == "" {
		missing = append(missing, EnvWebhookPathActive)
	}
	return missing
}

// LogMissing warns once per missing variable. The UI still starts.
func (c *WebhookConfig) LogMissing() {
	for _, key := range c.Missing() {
		logrus.Warnf("%s is missing.", key)
	}
}

// ResolveEndpoint joins base and path with exactly one slash between them.
// Only a single trailing slash of base is removed and nothing else is
// normalized.
func ResolveEndpoint(base, path string) string {
	if base == "" || path == "" {
		return ""
	}
	base = strings.TrimSuffix(base, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
