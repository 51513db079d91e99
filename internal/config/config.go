// Package config provides configuration loading for the assistant backend.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config holds all configuration for the assistant backend. It is built once
// at startup by Load and never mutated afterwards; consumers receive it by
// injection.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Server   ServerConfig
	Auth     AuthConfig
	MCP      MCPConfig
	Log      LogConfig
}

// AppConfig holds application identity and environment detection.
type AppConfig struct {
	Name       string
	Version    string
	Production bool
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Path         string
	QueryTimeout time.Duration
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host        string
	Port        int
	CORSOrigins []string
}

// AuthConfig holds token signing configuration.
type AuthConfig struct {
	SecretKey   string
	TokenExpiry time.Duration
}

// MCPConfig holds external tool service configuration.
type MCPConfig struct {
	ServerURL string
	AuthToken string
	Timeout   time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		return &ConfigError{Field: "database.path", Message: "database path cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "port must be between 1 and 65535"}
	}
	if len(c.Server.CORSOrigins) == 0 {
		return &ConfigError{Field: "server.cors_origins", Message: "at least one CORS origin is required"}
	}
	if c.Auth.SecretKey == "" {
		return &ConfigError{Field: "auth.secret_key", Message: "secret key cannot be empty"}
	}
	if c.Auth.TokenExpiry <= 0 {
		return &ConfigError{Field: "auth.token_expiry", Message: "token expiry must be positive"}
	}
	if _, err := url.ParseRequestURI(c.MCP.ServerURL); err != nil {
		return &ConfigError{Field: "mcp.server_url", Message: fmt.Sprintf("invalid MCP server URL: %v", err)}
	}
	if c.MCP.Timeout <= 0 {
		return &ConfigError{Field: "mcp.timeout", Message: "MCP timeout must be positive"}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log.level", Message: "log level must be one of debug, info, warn, error"}
	}
	return nil
}

// Addr returns the host:port listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
