package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
// Values are loaded from environment variables with sensible defaults.
type Config struct {
	// Server
	Port     int
	LogLevel string

	// Catalog document
	CatalogURL      string
	CatalogCacheTTL time.Duration // 0 disables caching (re-fetch per request)

	// Azure completion deployment
	AzureEndpoint  string
	AzureKey       string
	DeploymentName string

	// Chat
	HistoryWindow int

	// HTTP client
	HTTPTimeout time.Duration

	// Resilience
	MaxRetries     int
	InitialBackoff time.Duration
	MaxConcurrency int

	// CORS
	AllowedOrigins []string

	// Observability
	OTLPEndpoint string
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:     getEnvInt("PORT", 8000),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		CatalogURL:      getEnv("CATALOG_URL", "https://raw.githubusercontent.com/S1lver0/Json-Ia/refs/heads/master/cine_db.json"),
		CatalogCacheTTL: getEnvDuration("CATALOG_CACHE_TTL", 0),

		AzureEndpoint:  getEnv("AZURE_INFERENCE_SDK_ENDPOINT", ""),
		AzureKey:       getEnv("AZURE_INFERENCE_SDK_KEY", ""),
		DeploymentName: getEnv("DEPLOYMENT_NAME", ""),

		HistoryWindow: getEnvInt("HISTORY_WINDOW", 8),

		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 10*time.Second),

		MaxRetries:     getEnvInt("MAX_RETRIES", 3),
		InitialBackoff: getEnvDuration("INITIAL_BACKOFF", 100*time.Millisecond),
		MaxConcurrency: getEnvInt("MAX_CONCURRENCY", 50),

		AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"https://front-chat-bot.vercel.app"}),

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}
}

// MissingAzureVars lists the required Azure variables that are unset.
// The process refuses to start without them.
func (c *Config) MissingAzureVars() []string {
	var missing []string
	if c.AzureEndpoint == "" {
		missing = append(missing, "AZURE_INFERENCE_SDK_ENDPOINT")
	}
	if c.DeploymentName == "" {
		missing = append(missing, "DEPLOYMENT_NAME")
	}
	if c.AzureKey == "" {
		missing = append(missing, "AZURE_INFERENCE_SDK_KEY")
	}
	return missing
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
