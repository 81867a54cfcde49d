package sqlite

import (
	"time"

	"github.com/reikouwu/House-Liber-Arce/pkg/config"
)

// Config captures SQLite store configuration derived from application settings.
type Config struct {
	// Path is the database location or ":memory:" for in-memory deployments.
	Path string

	// MaxOpenConns controls the pool size exposed by database/sql.
	MaxOpenConns int

	// BusyTimeout configures sqlite busy timeout via PRAGMA busy_timeout.
	BusyTimeout time.Duration
}

// ConfigFromApp maps the application SQLite settings onto the driver config.
func ConfigFromApp(cfg *config.SQLiteConfig) *Config {
	if cfg == nil {
		return &Config{}
	}
	return &Config{Path: cfg.Path, BusyTimeout: cfg.BusyTimeout}
}
