package config

import (
	"encoding/json"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `koanf:"server"     validate:"required"`
	Store      StoreConfig      `koanf:"store"      validate:"required"`
	Database   DatabaseConfig   `koanf:"database"`
	SQLite     SQLiteConfig     `koanf:"sqlite"`
	Redis      RedisConfig      `koanf:"redis"`
	RateLimit  RateLimitConfig  `koanf:"ratelimit"`
	Monitoring MonitoringConfig `koanf:"monitoring"`
	Runtime    RuntimeConfig    `koanf:"runtime"    validate:"required"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host         string        `koanf:"host"           validate:"required"        env:"SERVER_HOST"`
	Port         int           `koanf:"port"           validate:"min=1,max=65535" env:"SERVER_PORT"`
	CORSEnabled  bool          `koanf:"cors_enabled"                              env:"SERVER_CORS_ENABLED"`
	CORS         CORSConfig    `koanf:"cors"`
	Timeout      time.Duration `koanf:"timeout"                                   env:"SERVER_TIMEOUT"`
	MaxBodyBytes int64         `koanf:"max_body_bytes" validate:"min=1024"        env:"SERVER_MAX_BODY_BYTES"`
}

// CORSConfig contains CORS configuration.
type CORSConfig struct {
	AllowedOrigins   []string `koanf:"allowed_origins"   env:"SERVER_CORS_ALLOWED_ORIGINS"`
	AllowCredentials bool     `koanf:"allow_credentials" env:"SERVER_CORS_ALLOW_CREDENTIALS"`
	MaxAge           int      `koanf:"max_age"           env:"SERVER_CORS_MAX_AGE"`
}

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverRedis    = "redis"
)

// StoreConfig selects the post storage backend.
type StoreConfig struct {
	Driver      string `koanf:"driver"       validate:"oneof=memory postgres sqlite redis" env:"STORE_DRIVER"`
	Seed        bool   `koanf:"seed"                                                       env:"STORE_SEED"`
	AutoMigrate bool   `koanf:"auto_migrate"                                               env:"STORE_AUTO_MIGRATE"`
}

// DatabaseConfig contains PostgreSQL connection configuration.
type DatabaseConfig struct {
	ConnString      string          `koanf:"conn_string"        env:"DB_CONN_STRING"`
	Host            string          `koanf:"host"               env:"DB_HOST"`
	Port            string          `koanf:"port"               env:"DB_PORT"`
	User            string          `koanf:"user"               env:"DB_USER"`
	Password        SensitiveString `koanf:"password"           env:"DB_PASSWORD"           sensitive:"true"`
	DBName          string          `koanf:"name"               env:"DB_NAME"`
	SSLMode         string          `koanf:"ssl_mode"           env:"DB_SSL_MODE"`
	MaxOpenConns    int             `koanf:"max_open_conns"     env:"DB_MAX_OPEN_CONNS"     validate:"min=0"`
	MaxIdleConns    int             `koanf:"max_idle_conns"     env:"DB_MAX_IDLE_CONNS"     validate:"min=0"`
	ConnMaxLifetime time.Duration   `koanf:"conn_max_lifetime"  env:"DB_CONN_MAX_LIFETIME"`
	ConnMaxIdleTime time.Duration   `koanf:"conn_max_idle_time" env:"DB_CONN_MAX_IDLE_TIME"`
}

// SQLiteConfig contains the SQLite database location.
type SQLiteConfig struct {
	Path        string        `koanf:"path"         env:"SQLITE_PATH"`
	BusyTimeout time.Duration `koanf:"busy_timeout" env:"SQLITE_BUSY_TIMEOUT"`
}

// RedisConfig contains Redis connection configuration.
type RedisConfig struct {
	URL      string          `koanf:"url"      env:"REDIS_URL"`
	Addr     string          `koanf:"addr"     env:"REDIS_ADDR"`
	Password SensitiveString `koanf:"password" env:"REDIS_PASSWORD" sensitive:"true"`
	DB       int             `koanf:"db"       env:"REDIS_DB"       validate:"min=0"`
	Prefix   string          `koanf:"prefix"   env:"REDIS_PREFIX"`
}

// Configured reports whether any Redis endpoint was provided.
func (c *RedisConfig) Configured() bool {
	return c.URL != "" || c.Addr != ""
}

// RateLimitConfig limits post creation per client IP.
type RateLimitConfig struct {
	Enabled bool          `koanf:"enabled" env:"RATELIMIT_ENABLED"`
	Limit   int64         `koanf:"limit"   env:"RATELIMIT_LIMIT"   validate:"min=1"`
	Period  time.Duration `koanf:"period"  env:"RATELIMIT_PERIOD"  validate:"min=1ms"`
	Prefix  string        `koanf:"prefix"  env:"RATELIMIT_PREFIX"`
}

// MonitoringConfig toggles the Prometheus endpoint.
type MonitoringConfig struct {
	Enabled bool   `koanf:"enabled" env:"MONITORING_ENABLED"`
	Path    string `koanf:"path"    env:"MONITORING_PATH"    validate:"required,startswith=/"`
}

// RuntimeConfig contains runtime behavior configuration.
type RuntimeConfig struct {
	Environment string `koanf:"environment" validate:"oneof=development staging production" env:"RUNTIME_ENVIRONMENT"`
	LogLevel    string `koanf:"log_level"   validate:"oneof=debug info warn error disabled" env:"RUNTIME_LOG_LEVEL"`
	LogJSON     bool   `koanf:"log_json"                                                    env:"RUNTIME_LOG_JSON"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8000,
			CORSEnabled: true,
			CORS: CORSConfig{
				AllowedOrigins:   []string{"http://localhost:3000"},
				AllowCredentials: true,
				MaxAge:           86400,
			},
			Timeout:      30 * time.Second,
			MaxBodyBytes: 64 << 10,
		},
		Store: StoreConfig{
			Driver:      DriverMemory,
			Seed:        true,
			AutoMigrate: true,
		},
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         "5432",
			User:         "postgres",
			DBName:       "liberarce",
			SSLMode:      "disable",
			MaxOpenConns: 20,
			MaxIdleConns: 2,
		},
		SQLite: SQLiteConfig{
			Path:        "board.db",
			BusyTimeout: 5 * time.Second,
		},
		Redis: RedisConfig{
			Prefix: "board:",
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			Limit:   30,
			Period:  time.Minute,
			Prefix:  "board:ratelimit:",
		},
		Monitoring: MonitoringConfig{
			Enabled: false,
			Path:    "/metrics",
		},
		Runtime: RuntimeConfig{
			Environment: "development",
			LogLevel:    "info",
		},
	}
}

// SensitiveString hides its value when printed or serialized.
type SensitiveString string

const redacted = "[REDACTED]"

func (s SensitiveString) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

// Value returns the raw secret.
func (s SensitiveString) Value() string {
	return string(s)
}

func (s SensitiveString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
