package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		t.Setenv("MANIFOLD_TEST_SECRET", "s3cret")
		path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
  throttle: 10
database:
  dsn: "file:test.db"
  max_open_conns: 2
auth:
  secret: ${MANIFOLD_TEST_SECRET}
  token_ttl: 1h
upstream:
  timeout: 5s
  retries: 2
  rate_limit: 2.5
  user_agent: test/1.0
  allow_private: true
metrics:
  enabled: false
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, int64(10), cfg.Server.Throttle)
		assert.Equal(t, "file:test.db", cfg.Database.DSN)
		assert.Equal(t, 2, cfg.Database.MaxOpenConns)
		assert.Equal(t, "s3cret", cfg.Auth.Secret, "env expanded")
		assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
		assert.Equal(t, 2, cfg.Upstream.Retries)
		assert.InDelta(t, 2.5, cfg.Upstream.RateLimit, 0.001)
		assert.Equal(t, "test/1.0", cfg.Upstream.UserAgent)
		assert.True(t, cfg.Upstream.AllowPrivate)
		assert.False(t, cfg.Metrics.Enabled)

		listen, timeout := cfg.GetServerConfig()
		assert.Equal(t, ":9090", listen)
		assert.Equal(t, 45*time.Second, timeout)
		maxBody, throttle := cfg.GetServerLimits()
		assert.Equal(t, int64(1024*1024), maxBody)
		assert.Equal(t, int64(10), throttle)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "auth:\n  secret: abc\n"))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, int64(1024*1024), cfg.Server.MaxBodySize)
		assert.Equal(t, int64(100), cfg.Server.Throttle)
		assert.Equal(t, "file:manifold.db?cache=shared&mode=rwc&_txlock=immediate", cfg.Database.DSN)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, 3600, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, 30*time.Second, cfg.Upstream.Timeout)
		assert.Equal(t, 3, cfg.Upstream.Retries)
		assert.Equal(t, 20, cfg.Upstream.Burst)
		assert.Equal(t, "manifold/1.0", cfg.Upstream.UserAgent)
		assert.False(t, cfg.Upstream.AllowPrivate)
		assert.True(t, cfg.Metrics.Enabled)
		assert.Empty(t, cfg.Permission.PolicyFile)
	})

	t.Run("file not found", func(t *testing.T) {
		cfg, err := Load("/non/existent/file.yml")
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "invalid yaml content\n  with bad indentation\n    and no structure\n"))
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{Auth: AuthConfig{Secret: "abc"}}
		cfg.setDefaults()
		return cfg
	}
	require.NoError(t, validate(valid()))

	tbl := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{"short server timeout", func(c *Config) { c.Server.Timeout = time.Millisecond }, "server timeout"},
		{"small body limit", func(c *Config) { c.Server.MaxBodySize = 10 }, "max_body_size"},
		{"negative throttle", func(c *Config) { c.Server.Throttle = -1 }, "throttle"},
		{"no secret", func(c *Config) { c.Auth.Secret = "" }, "auth.secret is required"},
		{"short ttl", func(c *Config) { c.Auth.TokenTTL = time.Second }, "token_ttl"},
		{"short upstream timeout", func(c *Config) { c.Upstream.Timeout = time.Millisecond }, "upstream timeout"},
		{"no retries", func(c *Config) { c.Upstream.Retries = -1 }, "retries"},
		{"missing policy file", func(c *Config) { c.Permission.PolicyFile = "/non/existent/policy.csv" }, "policy_file"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)
			err := validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestVerify(t *testing.T) {
	cfg := &Config{Auth: AuthConfig{Secret: "abc"}}
	cfg.setDefaults()
	require.NoError(t, Verify(cfg))

	cfg.Upstream.Retries = 0
	err := Verify(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retries")
}

func TestGenerateSchema(t *testing.T) {
	s := GenerateSchema()
	require.NotNil(t, s.Properties)
	for _, key := range []string{"server", "database", "auth", "permission", "upstream", "metrics"} {
		_, ok := s.Properties.Get(key)
		assert.True(t, ok, key)
	}
}
