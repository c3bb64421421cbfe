package config

import (
	"os"
	"strconv"
	"time"
)

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port              string
	BasePath          string
	LogLevel          string
	CopyFeedback      time.Duration
	ClipboardTempDir  string
	HeartbeatInterval time.Duration
}

// GetServerConfig returns server configuration from environment variables
func GetServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:              getEnv("PORT", "8080"),
		BasePath:          getEnv("BASE_PATH", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		CopyFeedback:      time.Duration(getEnvAsInt("COPY_FEEDBACK_MS", 1200)) * time.Millisecond,
		ClipboardTempDir:  getEnv("CLIPBOARD_TEMP_DIR", os.TempDir()),
		HeartbeatInterval: time.Duration(getEnvAsInt("SSE_HEARTBEAT_SECONDS", 15)) * time.Second,
	}
}

// getEnv gets environment variable with fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
