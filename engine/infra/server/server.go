// Package server assembles the gin router and runs the HTTP listener.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/monitoring"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/appstate"
	"github.com/reikouwu/House-Liber-Arce/engine/infra/server/middleware/ratelimit"
	"github.com/reikouwu/House-Liber-Arce/pkg/config"
	"github.com/reikouwu/House-Liber-Arce/pkg/logger"
)

const (
	serverShutdownTimeout = 5 * time.Second
	httpReadTimeout       = 15 * time.Second
	httpIdleTimeout       = 60 * time.Second
)

type Server struct {
	config     *config.Config
	state      *appstate.State
	monitoring *monitoring.Service
	limiter    *ratelimit.Manager
	router     *gin.Engine
}

type Option func(*Server)

// WithMonitoring enables request metrics and the scrape endpoint.
func WithMonitoring(service *monitoring.Service) Option {
	return func(s *Server) {
		s.monitoring = service
	}
}

// WithRateLimiter guards post creation with manager.
func WithRateLimiter(manager *ratelimit.Manager) Option {
	return func(s *Server) {
		s.limiter = manager
	}
}

// NewServer builds the router over state. The server does not own the
// state's dependencies; callers close them after Run returns.
func NewServer(ctx context.Context, state *appstate.State, opts ...Option) (*Server, error) {
	if state == nil {
		return nil, fmt.Errorf("server: app state is required")
	}
	s := &Server{config: state.Config, state: state}
	for _, opt := range opts {
		opt(s)
	}
	s.buildRouter(ctx)
	return s, nil
}

func (s *Server) buildRouter(ctx context.Context) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(logger.FromContext(ctx)))
	if s.config.Server.CORSEnabled {
		r.Use(CORSMiddleware(s.config.Server.CORS))
	}
	if s.monitoring != nil {
		r.Use(s.monitoring.GinMiddleware(ctx))
	}
	r.Use(appstate.StateMiddleware(s.state))
	s.RegisterRoutes(r)
	s.router = r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr is the configured listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.config.Server.Host, strconv.Itoa(s.config.Server.Port))
}

// Run serves until ctx is canceled or SIGINT/SIGTERM arrives, then drains
// in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	listener, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("server: listen on %s: %w", s.Addr(), err)
	}
	return s.serve(ctx, listener)
}

func (s *Server) serve(ctx context.Context, listener net.Listener) error {
	log := logger.FromContext(ctx)
	srv := s.createHTTPServer(ctx)
	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", fmt.Sprintf("http://%s", listener.Addr()))
		errCh <- srv.Serve(listener)
	}()
	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: serve: %w", err)
	case <-ctx.Done():
	}
	log.Debug("Received shutdown signal, initiating graceful shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), serverShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("Server shutdown completed successfully")
	return nil
}

func (s *Server) createHTTPServer(ctx context.Context) *http.Server {
	writeTimeout := s.config.Server.Timeout
	if writeTimeout <= 0 {
		writeTimeout = httpReadTimeout
	}
	return &http.Server{
		Handler:           s.router,
		ReadTimeout:       httpReadTimeout,
		ReadHeaderTimeout: httpReadTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       httpIdleTimeout,
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}
}
