package ratelimit

import (
	"fmt"
	"time"

	"github.com/reikouwu/House-Liber-Arce/pkg/config"
	"github.com/ulule/limiter/v3"
)

// Config represents rate limiting configuration
type Config struct {
	Rate RateConfig

	// Prefix namespaces limiter keys in the backing store.
	Prefix   string
	MaxRetry int
}

// RateConfig represents a single rate limit configuration
type RateConfig struct {
	Period time.Duration
	Limit  int64
}

// DefaultConfig returns default rate limiting configuration
func DefaultConfig() *Config {
	return &Config{
		Rate:     RateConfig{Limit: 30, Period: time.Minute},
		Prefix:   "board:ratelimit:",
		MaxRetry: 3,
	}
}

// ConfigFromApp maps application settings onto the limiter config.
func ConfigFromApp(cfg *config.RateLimitConfig) *Config {
	out := DefaultConfig()
	if cfg == nil {
		return out
	}
	out.Rate = RateConfig{Limit: cfg.Limit, Period: cfg.Period}
	if cfg.Prefix != "" {
		out.Prefix = cfg.Prefix
	}
	return out
}

// ToLimiterRate converts RateConfig to limiter.Rate
func (rc RateConfig) ToLimiterRate() limiter.Rate {
	return limiter.Rate{
		Period: rc.Period,
		Limit:  rc.Limit,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Rate.Limit <= 0 {
		return fmt.Errorf("rate limit must be positive")
	}
	if c.Rate.Period <= 0 {
		return fmt.Errorf("rate limit period must be positive")
	}
	return nil
}
