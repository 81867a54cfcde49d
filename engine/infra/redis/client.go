// Package redis stores section post logs in Redis sorted sets.
package redis

import (
	"context"
	"fmt"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/reikouwu/House-Liber-Arce/pkg/config"
	"github.com/reikouwu/House-Liber-Arce/pkg/logger"
)

const fallbackPingTimeout = 5 * time.Second

// Config holds Redis connection settings. URL wins over Addr when both are set.
type Config struct {
	URL         string
	Addr        string
	Password    string
	DB          int
	Prefix      string
	PingTimeout time.Duration
}

// ConfigFromApp maps the application Redis settings onto the client config.
func ConfigFromApp(cfg *config.RedisConfig) *Config {
	if cfg == nil {
		return &Config{}
	}
	return &Config{
		URL:      cfg.URL,
		Addr:     cfg.Addr,
		Password: cfg.Password.Value(),
		DB:       cfg.DB,
		Prefix:   cfg.Prefix,
	}
}

// Client wraps a go-redis client shared by the post store and the rate limiter.
type Client struct {
	client goredis.UniversalClient
	once   sync.Once
}

// NewClient connects and pings the server.
func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config is required")
	}
	client, err := buildClient(cfg)
	if err != nil {
		return nil, err
	}
	timeout := cfg.PingTimeout
	if timeout <= 0 {
		timeout = fallbackPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging Redis server (timeout=%s): %w", timeout, err)
	}
	logger.FromContext(ctx).With(
		"store_driver", "redis",
		"addr", client.Options().Addr,
		"db", client.Options().DB,
	).Info("Redis connection established")
	return &Client{client: client}, nil
}

// WrapClient adopts an existing go-redis client.
func WrapClient(client goredis.UniversalClient) *Client {
	return &Client{client: client}
}

func buildClient(cfg *Config) (*goredis.Client, error) {
	if cfg.URL != "" {
		opt, err := goredis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing Redis URL: %w", err)
		}
		if cfg.Password != "" {
			opt.Password = cfg.Password
		}
		return goredis.NewClient(opt), nil
	}
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis url or addr is required")
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}), nil
}

// Universal returns the underlying client.
func (c *Client) Universal() goredis.UniversalClient {
	return c.client
}

// HealthCheck pings the server.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: health check failed: %w", err)
	}
	return nil
}

// Close shuts down the connection once; later calls return nil.
func (c *Client) Close(ctx context.Context) error {
	var err error
	c.once.Do(func() {
		err = c.client.Close()
		if err != nil {
			logger.FromContext(ctx).Error("Redis connection close failed", "error", err)
			return
		}
		logger.FromContext(ctx).Debug("Redis connection closed")
	})
	return err
}
