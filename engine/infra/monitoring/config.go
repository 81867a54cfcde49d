package monitoring

import (
	"fmt"
	"strings"

	"github.com/reikouwu/House-Liber-Arce/pkg/config"
)

// Config holds monitoring configuration.
type Config struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path"    yaml:"path"`
}

// DefaultConfig returns default monitoring configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled: false,
		Path:    "/metrics",
	}
}

// ConfigFromApp converts the application monitoring settings.
func ConfigFromApp(cfg *config.MonitoringConfig) *Config {
	out := DefaultConfig()
	if cfg == nil {
		return out
	}
	out.Enabled = cfg.Enabled
	if cfg.Path != "" {
		out.Path = cfg.Path
	}
	return out
}

// Validate validates the monitoring configuration.
func (c *Config) Validate() error {
	if c.Path == "" {
		return fmt.Errorf("monitoring path cannot be empty")
	}
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("monitoring path must start with '/': %s", c.Path)
	}
	if strings.Contains(c.Path, "?") {
		return fmt.Errorf("monitoring path cannot contain query parameters: %s", c.Path)
	}
	if strings.HasPrefix(c.Path, "/sections") {
		return fmt.Errorf("monitoring path cannot shadow board routes: %s", c.Path)
	}
	return nil
}
