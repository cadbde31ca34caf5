package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/storefront-catalog-service/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func clearSecrets(t *testing.T) {
	t.Helper()
	for _, k := range []string{"APP_POSTGRES_USER", "APP_POSTGRES_PASSWORD", "APP_POSTGRES_DB", "APP_REDIS_ADDR", "APP_REDIS_PASSWORD"} {
		t.Setenv(k, "")
	}
}

func TestLoad_FromYAMLAndEnv(t *testing.T) {
	yaml := `
app:
  name: storefront-catalog-service
  version: 0.1.0
  env: test
  port: 18080

logger:
  level: info
  format: json

postgres:
  host: 127.0.0.1
  port: 5432
  sslmode: disable
  max_conns: 5
  min_conns: 1

redis:
  addr: 127.0.0.1:6379
  ttl: 30

rate_limit:
  rps: 5
  burst: 10
`
	path := writeTempConfig(t, yaml)
	clearSecrets(t)
	t.Setenv("APP_POSTGRES_USER", "shop")
	t.Setenv("APP_POSTGRES_PASSWORD", "secret")
	t.Setenv("APP_POSTGRES_DB", "catalog")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 18080, cfg.App.Port)
	assert.Equal(t, "shop", cfg.Postgres.User)
	assert.Equal(t, "secret", cfg.Postgres.Password)
	assert.Equal(t, "catalog", cfg.Postgres.DBName)
	assert.Equal(t, "127.0.0.1", cfg.Postgres.Host)
	assert.Equal(t, int32(5), cfg.Postgres.MaxConns)
	assert.Equal(t, "127.0.0.1:6379", cfg.Redis.Addr)
	assert.Equal(t, 30, cfg.Redis.TTL)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_Defaults(t *testing.T) {
	yaml := `
postgres:
  user: u
  password: p
  db: d
`
	path := writeTempConfig(t, yaml)
	clearSecrets(t)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, 60, cfg.Redis.TTL)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoad_RedisAddrFromEnvOnly(t *testing.T) {
	yaml := `
postgres:
  user: u
  password: p
  db: d
`
	path := writeTempConfig(t, yaml)
	clearSecrets(t)
	t.Setenv("APP_REDIS_ADDR", "cache:6379")
	t.Setenv("APP_REDIS_PASSWORD", "hunter2")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, "hunter2", cfg.Redis.Password)
}

func TestLoad_RedisTTLMustBePositive(t *testing.T) {
	for _, ttl := range []string{"0", "-1"} {
		t.Run(ttl, func(t *testing.T) {
			yaml := `
postgres:
  user: u
  password: p
  db: d
redis:
  addr: 127.0.0.1:6379
  ttl: ` + ttl + `
`
			path := writeTempConfig(t, yaml)
			clearSecrets(t)

			_, err := config.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "TTL")
		})
	}
}

func TestLoad_MissingRequiredSecretsFails(t *testing.T) {
	yaml := `
app:
  port: 18080
postgres:
  host: localhost
  port: 5432
`
	path := writeTempConfig(t, yaml)
	clearSecrets(t)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
