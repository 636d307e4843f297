// SPDX-License-Identifier: MIT

// Package server exposes a session over HTTP for browser renderers:
// JSON snapshots of the graph and trace, lifecycle control endpoints, a
// WebSocket frame stream and Prometheus metrics.
//
//	GET  /health             liveness
//	GET  /graph              nodes and edges
//	GET  /trace              trace snapshot
//	GET  /state              lifecycle state, run id, last result
//	GET  /frame              render.Frame
//	GET  /variants           registry entries
//	GET  /stream             WebSocket stream of render.Frame
//	POST /select/{name}      choose a variant
//	POST /endpoints          {"source":0,"target":9}
//	POST /size/{size}        small | medium | large
//	POST /regenerate         new random graph
//	POST /start | /pause | /resume | /stop
//	GET  /metrics            Prometheus exposition
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/katalvlaran/algoviz/builder"
	"github.com/katalvlaran/algoviz/engine"
	"github.com/katalvlaran/algoviz/metrics"
	"github.com/katalvlaran/algoviz/render"
)

// Controller is the session surface the server drives.
// *session.Session satisfies it.
type Controller interface {
	render.Source

	SelectVariant(name string) error
	SetEndpoints(source, target int) error
	SetSize(size builder.Size) error
	Regenerate() error
	Start() error
	Pause()
	Resume()
	Stop()
	LastResult() (engine.Result, bool)
}

// Options configures a Server.
type Options struct {
	Logger         *zap.Logger
	Metrics        *metrics.Collector
	AllowedOrigins []string
	// StreamInterval is how often /stream samples the session.
	StreamInterval time.Duration
	ReadTimeout    time.Duration
}

// Server is the HTTP surface.
type Server struct {
	ctl      Controller
	log      *zap.Logger
	metrics  *metrics.Collector
	validate *validator.Validate
	upgrader websocket.Upgrader
	interval time.Duration
	timeout  time.Duration
	handler  http.Handler
}

// New builds the router for ctl.
func New(ctl Controller, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.StreamInterval <= 0 {
		opts.StreamInterval = 100 * time.Millisecond
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = 10 * time.Second
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	s := &Server{
		ctl:      ctl,
		log:      opts.Logger,
		metrics:  opts.Metrics,
		validate: validator.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		interval: opts.StreamInterval,
		timeout:  opts.ReadTimeout,
	}
	s.handler = s.routes(opts.AllowedOrigins)

	return s
}

func (s *Server) routes(origins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.observe)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)
	r.Get("/graph", s.graph)
	r.Get("/trace", s.trace)
	r.Get("/state", s.state)
	r.Get("/frame", s.frame)
	r.Get("/variants", s.variants)
	r.Get("/stream", s.stream)

	r.Post("/select/{name}", s.selectVariant)
	r.Post("/endpoints", s.endpoints)
	r.Post("/size/{size}", s.size)
	r.Post("/regenerate", s.regenerate)
	r.Post("/start", s.start)
	r.Post("/pause", s.pause)
	r.Post("/resume", s.resume)
	r.Post("/stop", s.stop)

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.handler }

// ListenAndServe serves on addr until ctx is done, then shuts down within
// shutdownTimeout. A clean shutdown returns nil.
func (s *Server) ListenAndServe(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("server: listen %s: %w", addr, err)
	}

	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: s.timeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Serve(ln) }()
	s.log.Info("http server listening", zap.String("addr", ln.Addr().String()))

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server: %w", err)
	}
	s.log.Info("http server stopped")

	return nil
}
