package repo

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/memory"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/postgres"
	redisstore "github.com/reikouwu/House-Liber-Arce/engine/infra/redis"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/sqlite"
	"github.com/reikouwu/House-Liber-Arce/engine/post"
	"github.com/reikouwu/House-Liber-Arce/pkg/config"
	"github.com/reikouwu/House-Liber-Arce/pkg/logger"
)

// Provider exposes the post repository for the configured driver. It owns
// the driver connections and returns interfaces rather than driver types.
type Provider struct {
	driver  string
	posts   post.Repository
	redis   *redisstore.Client
	health  []func(context.Context) error
	closers []func(context.Context) error
}

// NewProvider opens the store selected by cfg.Store.Driver. A Redis client is
// also opened whenever Redis is configured so other components can share it.
func NewProvider(ctx context.Context, cfg *config.Config) (*Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("repo: config is required")
	}
	p := &Provider{driver: cfg.Store.Driver}
	if err := p.openRedis(ctx, cfg); err != nil {
		return nil, err
	}
	if err := p.openStore(ctx, cfg); err != nil {
		if cErr := p.Close(context.WithoutCancel(ctx)); cErr != nil {
			err = errors.Join(err, cErr)
		}
		return nil, err
	}
	logger.FromContext(ctx).Info("Post store ready", "driver", p.driver)
	return p, nil
}

func (p *Provider) openRedis(ctx context.Context, cfg *config.Config) error {
	if !cfg.Redis.Configured() {
		return nil
	}
	client, err := redisstore.NewClient(ctx, redisstore.ConfigFromApp(&cfg.Redis))
	if err != nil {
		return fmt.Errorf("repo: open redis: %w", err)
	}
	p.redis = client
	p.closers = append(p.closers, client.Close)
	if cfg.Store.Driver == config.DriverRedis {
		p.health = append(p.health, client.HealthCheck)
	}
	return nil
}

func (p *Provider) openStore(ctx context.Context, cfg *config.Config) error {
	switch cfg.Store.Driver {
	case config.DriverMemory, "":
		p.driver = config.DriverMemory
		posts := memory.NewPostRepo()
		p.posts = posts
		p.health = append(p.health, posts.HealthCheck)
		p.closers = append(p.closers, posts.Close)
	case config.DriverPostgres:
		pgCfg := postgres.ConfigFromApp(&cfg.Database)
		if cfg.Store.AutoMigrate {
			if err := postgres.ApplyMigrations(ctx, pgCfg.DSN()); err != nil {
				return fmt.Errorf("repo: migrate postgres: %w", err)
			}
		}
		store, err := postgres.NewStore(ctx, pgCfg)
		if err != nil {
			return fmt.Errorf("repo: open postgres: %w", err)
		}
		p.posts = postgres.NewPostRepo(store.Pool())
		p.health = append(p.health, store.HealthCheck)
		p.closers = append(p.closers, store.Close)
	case config.DriverSQLite:
		store, err := sqlite.NewStore(ctx, sqlite.ConfigFromApp(&cfg.SQLite))
		if err != nil {
			return fmt.Errorf("repo: open sqlite: %w", err)
		}
		p.health = append(p.health, store.HealthCheck)
		p.closers = append(p.closers, store.Close)
		if cfg.Store.AutoMigrate {
			if err := sqlite.ApplyMigrations(ctx, store.DB()); err != nil {
				return fmt.Errorf("repo: migrate sqlite: %w", err)
			}
		}
		p.posts = sqlite.NewPostRepo(store.DB())
	case config.DriverRedis:
		if p.redis == nil {
			return fmt.Errorf("repo: redis driver requires redis.url or redis.addr")
		}
		p.posts = redisstore.NewPostRepo(p.redis.Universal(), cfg.Redis.Prefix)
	default:
		return fmt.Errorf("repo: unsupported store driver %q", cfg.Store.Driver)
	}
	return nil
}

// Driver returns the active store driver name.
func (p *Provider) Driver() string { return p.driver }

// NewPostRepo returns the post repository.
func (p *Provider) NewPostRepo() post.Repository { return p.posts }

// Redis returns the shared Redis client, or nil when Redis is not configured.
func (p *Provider) Redis() goredis.UniversalClient {
	if p.redis == nil {
		return nil
	}
	return p.redis.Universal()
}

// HealthCheck checks every connection the active store depends on.
func (p *Provider) HealthCheck(ctx context.Context) error {
	for _, check := range p.health {
		if err := check(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Close releases connections in reverse opening order.
func (p *Provider) Close(ctx context.Context) error {
	var errs []error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	p.closers = nil
	return errors.Join(errs...)
}

// Migrate applies schema migrations for the SQL drivers and is a no-op for
// the others.
func Migrate(ctx context.Context, cfg *config.Config) error {
	log := logger.FromContext(ctx)
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		if err := postgres.ApplyMigrations(ctx, postgres.ConfigFromApp(&cfg.Database).DSN()); err != nil {
			return fmt.Errorf("repo: migrate postgres: %w", err)
		}
	case config.DriverSQLite:
		store, err := sqlite.NewStore(ctx, sqlite.ConfigFromApp(&cfg.SQLite))
		if err != nil {
			return fmt.Errorf("repo: open sqlite: %w", err)
		}
		defer func() {
			if cErr := store.Close(ctx); cErr != nil {
				log.Warn("Failed to close sqlite store", "error", cErr)
			}
		}()
		if err := sqlite.ApplyMigrations(ctx, store.DB()); err != nil {
			return fmt.Errorf("repo: migrate sqlite: %w", err)
		}
	default:
		log.Info("Store driver has no schema to migrate", "driver", cfg.Store.Driver)
		return nil
	}
	log.Info("Migrations applied", "driver", cfg.Store.Driver)
	return nil
}
