package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/config"
	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/logging"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	readHeaderTimeout      = 5 * time.Second

	// maxHeaderBytes leaves room for the session cookie and a CSRF header.
	maxHeaderBytes = 64 << 10
)

// Server serves the admin router with graceful shutdown. The listener is
// bound by Start, so a zero port picks a free one and Addr reports it once
// Ready is closed.
type Server struct {
	srv    *http.Server
	logger *slog.Logger

	ready     chan struct{}
	readyOnce sync.Once
	ln        net.Listener
}

// NewServer creates a Server for handler. Request contexts start with logger
// attached, so code outside the logging middleware still logs through it.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			MaxHeaderBytes:    maxHeaderBytes,
			BaseContext: func(net.Listener) context.Context {
				return logging.WithLogger(context.Background(), logger)
			},
			ErrorLog: slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Start binds the listener and serves until Shutdown. It returns nil after a
// graceful shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		s.readyOnce.Do(func() { close(s.ready) })
		return fmt.Errorf("binding %s: %w", s.srv.Addr, err)
	}
	s.readyOnce.Do(func() {
		s.ln = ln
		close(s.ready)
	})

	s.logger.Info("starting HTTP server", slog.String("addr", ln.Addr().String()))
	if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}
	return nil
}

// Ready is closed once Start has bound its listener or failed to.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown drains in-flight requests. Without a deadline on ctx it waits at
// most ten seconds.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultShutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server")
	return s.srv.Shutdown(ctx)
}

// Addr returns the bound address once listening, the configured one before.
func (s *Server) Addr() string {
	select {
	case <-s.ready:
		if s.ln != nil {
			return s.ln.Addr().String()
		}
	default:
	}
	return s.srv.Addr
}
