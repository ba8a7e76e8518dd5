package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Server is the HTTP chassis shared by the API endpoints. It owns the
// middleware chain, the system endpoints, and graceful shutdown.
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	mu          sync.RWMutex
	ready       bool
}

// Option customizes server configuration during construction.
type Option func(*Config) *Config

// WithConfig replaces the entire configuration.
func WithConfig(config *Config) Option {
	return func(*Config) *Config {
		if config == nil {
			return parseConfig()
		}
		return config
	}
}

// WithName sets the server identity used in logs and the default route.
func WithName(name string) Option {
	return func(c *Config) *Config {
		c.Name = name
		return c
	}
}

// WithVersion sets the server version used in logs and the default route.
func WithVersion(version string) Option {
	return func(c *Config) *Config {
		c.Version = version
		return c
	}
}

// WithHandler registers route handlers. May be passed multiple times;
// later registrations win on path conflicts.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(c *Config) *Config {
		if c.Handlers == nil {
			c.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		for path, handler := range handlers {
			c.Handlers[path] = handler
		}
		return c
	}
}

// New creates a server from the given options. Defaults come from
// parseConfig; a default root handler is installed unless the caller
// registered one.
func New(opts ...Option) *Server {
	cfg := parseConfig()
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	if cfg.Handlers == nil {
		cfg.Handlers = make(map[string]http.HandlerFunc)
	}

	s := &Server{
		config:      cfg,
		rateLimiter: rate.NewLimiter(cfg.RateLimit, cfg.RateLimitBurst),
	}

	if _, ok := cfg.Handlers["/"]; !ok {
		cfg.Handlers["/"] = s.handleDefault
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
		Handler:           s.setupRoutes(),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}

	return s
}

// setReady marks the server as ready to serve traffic.
func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// Start starts the HTTP server and blocks until the context is cancelled
// or the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.setReady(true)

	slog.Info("starting http server", "name", s.config.Name, "addr", s.httpServer.Addr)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down http server", "name", s.config.Name)
	return s.httpServer.Shutdown(shutdownCtx)
}

// Run starts the server with SIGINT/SIGTERM handling and blocks until
// shutdown completes.
func (s *Server) Run(ctx context.Context) error {
	slog.Info("server config",
		"address", s.httpServer.Addr,
		"rateLimit", s.config.RateLimit,
		"rateLimitBurst", s.config.RateLimitBurst,
		"readTimeout", s.config.ReadTimeout,
		"writeTimeout", s.config.WriteTimeout,
		"idleTimeout", s.config.IdleTimeout,
		"shutdownTimeout", s.config.ShutdownTimeout,
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
