// Package server exposes map generation over HTTP.
//
// # Endpoints
//
//   - GET /healthz: liveness and build info
//   - GET /presets: every preset with its biome table
//   - GET /map: one generated map, rendered by a sink
//
// /map accepts the same inputs as the CLI, as query parameters:
//
//	GET /map?seed=42&size=64x48&preset=wide&format=png&cells=colors
//
// Seed and size follow the gridshape fallback policy. Format defaults to json.
//
// Every response carries an X-Job-Id header. Errors are JSON objects with the
// error code, a message and the job id; INVALID_* codes map to 400.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/net/netutil"

	"github.com/matzehuels/terramap/pkg/cache"
)

// Defaults for [New].
const (
	DefaultMaxCells       = 4_000_000
	DefaultMaxConnections = 256
	shutdownTimeout       = 10 * time.Second
)

// Server serves generated maps.
type Server struct {
	logger *log.Logger
	router chi.Router
	opts   options
}

type options struct {
	maxCells       int
	maxConnections int
	workers        int
	cache          cache.Cache
	cacheTTL       time.Duration
}

// Option configures a [Server].
type Option func(*options)

// WithMaxCells caps width*height of a single request. Larger requests are
// rejected with INVALID_DIMENSION before any work is done.
func WithMaxCells(n int) Option { return func(o *options) { o.maxCells = n } }

// WithMaxConnections caps concurrent inbound connections. Zero or less
// disables the cap.
func WithMaxConnections(n int) Option { return func(o *options) { o.maxConnections = n } }

// WithWorkers bounds row parallelism per request. Zero uses the generator
// default.
func WithWorkers(n int) Option { return func(o *options) { o.workers = n } }

// WithCache stores rendered maps in c for ttl (zero means no expiry).
// Responses served from the cache carry "X-Cache: hit".
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(o *options) {
		if c == nil {
			c = cache.NewNullCache()
		}
		o.cache, o.cacheTTL = c, ttl
	}
}

// New builds a server that logs to logger.
func New(logger *log.Logger, opts ...Option) *Server {
	o := options{
		maxCells:       DefaultMaxCells,
		maxConnections: DefaultMaxConnections,
		cache:          cache.NewNullCache(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{logger: logger, opts: o}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(s.jobID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/presets", s.handlePresets)
	r.Get("/map", s.handleMap)
	r.NotFound(s.handleNotFound)
	r.MethodNotAllowed(s.handleMethodNotAllowed)

	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}

// Serve is [Server.ListenAndServe] on an existing listener.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	if s.opts.maxConnections > 0 {
		l = netutil.LimitListener(l, s.opts.maxConnections)
	}

	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(l) }()
	s.logger.Info("Listening", "addr", l.Addr().String())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != http.ErrServerClosed {
		return err
	}
	return nil
}
