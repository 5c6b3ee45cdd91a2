package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server     ServerConfig     `yaml:"server" json:"server" jsonschema:"description=Server configuration"`
	Database   DatabaseConfig   `yaml:"database" json:"database" jsonschema:"description=Database configuration"`
	Auth       AuthConfig       `yaml:"auth" json:"auth" jsonschema:"description=Request token configuration"`
	Permission PermissionConfig `yaml:"permission" json:"permission" jsonschema:"description=Permission policy configuration"`
	Upstream   UpstreamConfig   `yaml:"upstream" json:"upstream" jsonschema:"description=Outbound requests of built-in feed service types"`
	Metrics    MetricsConfig    `yaml:"metrics" json:"metrics" jsonschema:"description=Prometheus metrics"`
}

// ServerConfig holds http server settings
type ServerConfig struct {
	Listen      string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
	Timeout     time.Duration `yaml:"timeout" json:"timeout" jsonschema:"description=HTTP server timeout (30s by default)"`
	MaxBodySize int64         `yaml:"max_body_size" json:"max_body_size" jsonschema:"default=1048576,minimum=1024,description=Maximum request body size in bytes"`
	Throttle    int64         `yaml:"throttle" json:"throttle" jsonschema:"default=100,minimum=0,description=Maximum concurrent requests"`
}

// DatabaseConfig holds sqlite settings
type DatabaseConfig struct {
	DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:manifold.db?cache=shared&mode=rwc,description=Database connection string"`
	MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
	MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
}

// AuthConfig holds token settings
type AuthConfig struct {
	Secret   string        `yaml:"secret" json:"secret" jsonschema:"description=HS256 token signing secret (can use environment variable)"`
	TokenTTL time.Duration `yaml:"token_ttl" json:"token_ttl" jsonschema:"description=Lifetime of issued tokens (24h by default)"`
}

// PermissionConfig holds the casbin policy location
type PermissionConfig struct {
	PolicyFile string `yaml:"policy_file" json:"policy_file" jsonschema:"description=Casbin policy csv (embedded policy if empty)"`
}

// UpstreamConfig holds outbound client settings shared by built-in service types
type UpstreamConfig struct {
	Timeout      time.Duration `yaml:"timeout" json:"timeout" jsonschema:"description=Request timeout (30s by default)"`
	Retries      int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Attempts on transient failures"`
	RateLimit    float64       `yaml:"rate_limit" json:"rate_limit" jsonschema:"default=10,description=Requests per second to all upstream services"`
	Burst        int           `yaml:"burst" json:"burst" jsonschema:"default=20,minimum=1,description=Rate limiter burst"`
	MaxBodySize  int64         `yaml:"max_body_size" json:"max_body_size" jsonschema:"default=33554432,description=Maximum upstream response size in bytes"`
	UserAgent    string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=manifold/1.0,description=User agent for upstream requests"`
	AllowPrivate bool          `yaml:"allow_private" json:"allow_private" jsonschema:"default=false,description=Allow requests to private and loopback addresses"`
}

// MetricsConfig holds metrics endpoint settings
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Serve prometheus metrics on /metrics"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	cfg := Config{Metrics: MetricsConfig{Enabled: true}}
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.setDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// schema verification is supplementary, a failure is only reported
	if err := Verify(&cfg); err != nil {
		log.Printf("[WARN] schema validation failed: %v", err)
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}
	if c.Server.MaxBodySize == 0 {
		c.Server.MaxBodySize = 1024 * 1024
	}
	if c.Server.Throttle == 0 {
		c.Server.Throttle = 100
	}

	if c.Database.DSN == "" {
		c.Database.DSN = "file:manifold.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	if c.Auth.TokenTTL == 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}

	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = 30 * time.Second
	}
	if c.Upstream.Retries == 0 {
		c.Upstream.Retries = 3
	}
	if c.Upstream.RateLimit == 0 {
		c.Upstream.RateLimit = 10
	}
	if c.Upstream.Burst == 0 {
		c.Upstream.Burst = 20
	}
	if c.Upstream.MaxBodySize == 0 {
		c.Upstream.MaxBodySize = 32 * 1024 * 1024
	}
	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = "manifold/1.0"
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Server.MaxBodySize < 1024 {
		return fmt.Errorf("server.max_body_size must be at least 1024")
	}
	if cfg.Server.Throttle < 0 {
		return fmt.Errorf("server.throttle must be non-negative")
	}
	if cfg.Auth.Secret == "" {
		return fmt.Errorf("auth.secret is required")
	}
	if cfg.Auth.TokenTTL < time.Minute {
		return fmt.Errorf("auth.token_ttl must be at least 1 minute")
	}
	if cfg.Upstream.Timeout < time.Second {
		return fmt.Errorf("upstream timeout must be at least 1 second")
	}
	if cfg.Upstream.Retries < 1 {
		return fmt.Errorf("upstream.retries must be at least 1")
	}
	if cfg.Upstream.RateLimit < 0 {
		return fmt.Errorf("upstream.rate_limit must be non-negative")
	}
	if cfg.Permission.PolicyFile != "" {
		if _, err := os.Stat(cfg.Permission.PolicyFile); err != nil {
			return fmt.Errorf("permission.policy_file: %w", err)
		}
	}
	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetServerLimits returns request body size limit and concurrent requests limit
func (c *Config) GetServerLimits() (maxBodySize, throttle int64) {
	return c.Server.MaxBodySize, c.Server.Throttle
}
