package config

import (
	"github.com/maxviazov/storefront-catalog-service/internal/logger"
)

type Config struct {
	App       App                 `mapstructure:"app"`
	Logger    logger.LoggerConfig `mapstructure:"logger" validate:"-"`
	Postgres  Postgres            `mapstructure:"postgres"`
	Redis     Redis               `mapstructure:"redis"`
	RateLimit RateLimit           `mapstructure:"rate_limit"`
}

type App struct {
	Name            string `mapstructure:"name"`
	Version         string `mapstructure:"version"`
	Env             string `mapstructure:"env" validate:"omitempty,oneof=dev test staging prod"`
	Port            int    `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
	AutoMigrate     bool   `mapstructure:"auto_migrate"`
}

// Postgres connection and pool tuning. Durations are in seconds.
type Postgres struct {
	Host              string `mapstructure:"host" validate:"required"`
	Port              int    `mapstructure:"port" validate:"min=1,max=65535"`
	User              string `mapstructure:"user" validate:"required"`
	Password          string `mapstructure:"password" validate:"required"`
	DBName            string `mapstructure:"db" validate:"required"`
	SSLMode           string `mapstructure:"sslmode" validate:"omitempty,oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns          int32  `mapstructure:"max_conns" validate:"min=0"`
	MinConns          int32  `mapstructure:"min_conns" validate:"min=0"`
	MaxConnLifetime   int    `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime   int    `mapstructure:"max_conn_idle_time"`
	HealthCheckPeriod int    `mapstructure:"health_check_period"`
}

// Redis backs the product listing cache. An empty Addr disables caching.
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min=0"`
	TTL      int    `mapstructure:"ttl" validate:"min=1"` // seconds
}

// RateLimit configures the per-client token bucket. Zero RPS disables it.
type RateLimit struct {
	RPS   float64 `mapstructure:"rps" validate:"min=0"`
	Burst int     `mapstructure:"burst" validate:"min=0"`
}
