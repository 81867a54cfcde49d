package ratelimit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/router"
	"github.com/reikouwu/House-Liber-Arce/pkg/logger"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const memoryCleanupInterval = 30 * time.Second

// Manager owns the limiter store and builds gin middleware on top of it.
type Manager struct {
	config  *Config
	limiter *limiter.Limiter
	backend string
}

// NewManager uses a Redis store when client is non-nil and an in-memory store
// otherwise. Limits are keyed by client IP.
func NewManager(cfg *Config, client goredis.UniversalClient) (*Manager, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts := limiter.StoreOptions{
		Prefix:          cfg.Prefix,
		MaxRetry:        cfg.MaxRetry,
		CleanUpInterval: memoryCleanupInterval,
	}
	var (
		store   limiter.Store
		backend string
	)
	if client != nil {
		s, err := sredis.NewStoreWithOptions(client, opts)
		if err != nil {
			return nil, fmt.Errorf("ratelimit: redis store: %w", err)
		}
		store, backend = s, "redis"
	} else {
		store, backend = memory.NewStoreWithOptions(opts), "memory"
	}
	return &Manager{
		config:  cfg,
		limiter: limiter.New(store, cfg.Rate.ToLimiterRate()),
		backend: backend,
	}, nil
}

// Backend names the store in use.
func (m *Manager) Backend() string { return m.backend }

// Middleware rejects requests over the limit with a 429 problem.
func (m *Manager) Middleware() gin.HandlerFunc {
	return mgin.NewMiddleware(
		m.limiter,
		mgin.WithLimitReachedHandler(limitReached),
		mgin.WithErrorHandler(storeFailed),
		mgin.WithKeyGetter(func(c *gin.Context) string { return c.ClientIP() }),
	)
}

func limitReached(c *gin.Context) {
	route := c.FullPath()
	IncrementBlockedRequests(c.Request.Context(), route)
	router.RespondProblemWithCode(
		c,
		http.StatusTooManyRequests,
		router.ErrRateLimitedCode,
		"too many posts; try again later",
	)
}

func storeFailed(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).Error("Rate limiter store failed", "error", err)
	router.RespondProblemWithCode(
		c,
		http.StatusInternalServerError,
		router.ErrInternalCode,
		"rate limiter unavailable",
	)
}
