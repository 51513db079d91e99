package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	appName    = "AI Personal Assistant"
	appVersion = "0.1.0"
)

// Load builds a Config from environment variables layered over defaults.
//
// Environment keys (flat, uppercase): DATABASE_PATH, HOST, PORT, CORS_ORIGINS
// (comma-separated), SECRET_KEY, TOKEN_EXPIRE_MINUTES, MCP_SERVER_URL,
// MCP_AUTH_TOKEN, MCP_TIMEOUT, LOG_LEVEL, ENVIRONMENT.
//
// Production is detected from ENVIRONMENT=production or, on hosted platforms,
// from RENDER_SERVICE_NAME being set or PORT being 10000. The returned Config
// is validated and must not be mutated after this call.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Flat env keys, lowercased. No prefix: the deployment environment owns
	// the whole variable namespace (DATABASE_PATH, SECRET_KEY, ...).
	if err := k.Load(env.Provider("", ".", strings.ToLower), nil); err != nil {
		return nil, &ConfigError{Field: "environment", Message: err.Error()}
	}

	cfg := &Config{
		App: AppConfig{
			Name:       appName,
			Version:    appVersion,
			Production: isProduction(k),
		},
		Database: DatabaseConfig{
			Path:         stringOr(k, "database_path", "./assistant.db"),
			QueryTimeout: durationOr(k, "database_query_timeout", 10*time.Second),
		},
		Server: ServerConfig{
			Host:        stringOr(k, "host", "0.0.0.0"),
			Port:        intOr(k, "port", 8000),
			CORSOrigins: splitOrigins(stringOr(k, "cors_origins", "http://localhost:5173,http://localhost:3000")),
		},
		Auth: AuthConfig{
			SecretKey:   stringOr(k, "secret_key", "your-secret-key-change-in-production"),
			TokenExpiry: time.Duration(intOr(k, "token_expire_minutes", 30)) * time.Minute,
		},
		MCP: MCPConfig{
			ServerURL: stringOr(k, "mcp_server_url", "http://localhost:3001"),
			AuthToken: k.String("mcp_auth_token"),
			Timeout:   durationOr(k, "mcp_timeout", 30*time.Second),
		},
		Log: LogConfig{
			Level: stringOr(k, "log_level", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// isProduction detects hosted environments. Render sets RENDER_SERVICE_NAME
// automatically and routes traffic to port 10000.
func isProduction(k *koanf.Koanf) bool {
	if strings.EqualFold(k.String("environment"), "production") {
		return true
	}
	if k.String("render_service_name") != "" {
		return true
	}
	return k.String("port") == "10000"
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func stringOr(k *koanf.Koanf, key, fallback string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return fallback
}

func intOr(k *koanf.Koanf, key string, fallback int) int {
	raw := k.String(key)
	if raw == "" {
		return fallback
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return fallback
}

func durationOr(k *koanf.Koanf, key string, fallback time.Duration) time.Duration {
	raw := k.String(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
