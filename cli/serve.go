package cli

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/monitoring"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/repo"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/appstate"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/middleware/ratelimit"
	"github.com/reikouwu/House-Liber-Arce/engine/post"
	"github.com/reikouwu/House-Liber-Arce/engine/section"
	"github.com/reikouwu/House-Liber-Arce/pkg/config"
	"github.com/reikouwu/House-Liber-Arce/pkg/logger"
	"github.com/spf13/cobra"
)

const productionEnvironment = "production"

func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start"},
		Short:   "Run the board HTTP API",
		RunE:    runServe,
	}
	cmd.Flags().String("host", "", "Listen host")
	cmd.Flags().Int("port", 0, "Listen port")
	cmd.Flags().Bool("seed", true, "Seed empty sections with sample posts")
	addStoreFlags(cmd.Flags())
	cmd.Flags().String("redis-url", "", "Redis connection URL")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	log := logger.FromContext(ctx)
	if cfg.Runtime.Environment == productionEnvironment {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Info("Starting board server", "driver", cfg.Store.Driver, "environment", cfg.Runtime.Environment)

	metricsService := monitoring.NewMonitoringServiceWithFallback(ctx, monitoring.ConfigFromApp(&cfg.Monitoring))
	metricsService.SetAsGlobal()
	defer func() {
		if err := metricsService.Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Warn("Failed to shutdown monitoring", "error", err)
		}
	}()
	if err := ratelimit.InitMetrics(metricsService.Meter()); err != nil {
		log.Warn("Failed to initialize rate limit metrics", "error", err)
	}

	provider, err := repo.NewProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := provider.Close(context.WithoutCancel(ctx)); err != nil {
			log.Warn("Failed to close post store", "error", err)
		}
	}()

	state, err := appstate.NewState(appstate.NewBaseDeps(cfg, section.DefaultRegistry(), provider.NewPostRepo()))
	if err != nil {
		return fmt.Errorf("failed to create app state: %w", err)
	}
	if cfg.Store.Seed {
		if _, err := state.PostUseCases().SeedPosts(post.DefaultSeeds()).Execute(ctx); err != nil {
			return err
		}
	}

	opts := []server.Option{server.WithMonitoring(metricsService)}
	if cfg.RateLimit.Enabled {
		manager, err := ratelimit.NewManager(ratelimit.ConfigFromApp(&cfg.RateLimit), provider.Redis())
		if err != nil {
			return fmt.Errorf("failed to create rate limiter: %w", err)
		}
		log.Info("Rate limiting post creation", "backend", manager.Backend(), "limit", cfg.RateLimit.Limit, "period", cfg.RateLimit.Period)
		opts = append(opts, server.WithRateLimiter(manager))
	}
	srv, err := server.NewServer(ctx, state, opts...)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
