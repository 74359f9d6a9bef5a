package devserver

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"fips/core/logger"
	"fips/core/middleware/rayid"
	"fips/core/server"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// shutdownTimeout bounds how long an in-flight request may delay shutdown.
const shutdownTimeout = 5 * time.Second

// Server serves a directory over plain HTTP for local development.
type Server struct {
	cfg     server.Config
	console *logger.Console
	logger  *zap.Logger
	app     *fiber.App
	mu      sync.Mutex
}

// New creates a Server for cfg. Nothing is bound until Listen or Run.
func New(cfg server.Config, console *logger.Console, l *zap.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		console: console,
		logger:  l,
	}

	root := cfg.Root
	if root == "" {
		root = "."
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We print our own notice
	})

	app.Use(s.serialize)
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		// Reloads must always see the file on disk.
		c.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		logger.WithRayID(s.logger, c).Debug("Request served",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
		return err
	})

	app.Static("/", root, fiber.Static{
		Browse: true,
		Index:  "index.html",
	})

	s.app = app
	return s
}

// App exposes the Fiber application, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// serialize runs the handler chain for one request at a time. The lock is
// released when the handlers return, so fasthttp may still be streaming a
// previous response body while the next request is handled.
func (s *Server) serialize(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.Next()
}

// Listen binds the configured address.
func (s *Server) Listen(ctx context.Context) (net.Listener, error) {
	ln, err := listenConfig(s.cfg.ReuseAddress).Listen(ctx, "tcp", s.cfg.Address())
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", s.cfg.Address(), err)
	}
	return ln, nil
}

// Serve serves requests on ln until ctx is cancelled. The listener is closed
// on every return path. Cancellation is a clean stop and yields a nil error.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer ln.Close()

	s.console.Colored(logger.Green, fmt.Sprintf("serving on %s (Ctrl-C to quit)", s.displayURL(ln)))
	s.logger.Debug("Dev server started", zap.String("addr", ln.Addr().String()), zap.String("root", s.cfg.Root))

	done := make(chan error, 1)
	go func() {
		done <- s.app.Listener(ln)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		s.logger.Warn("Dev server shutdown incomplete", zap.Error(err))
	}
	// Shutdown only closes listeners fasthttp has already registered.
	_ = ln.Close()
	if err := <-done; err != nil {
		s.logger.Debug("Listener returned after shutdown", zap.Error(err))
	}

	s.console.Colored(logger.Green, "\nhttp server stopped")
	return nil
}

// Run binds the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen(ctx)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// displayURL uses the configured host with the port actually bound, which
// differs from the configured one when port 0 was requested.
func (s *Server) displayURL(ln net.Listener) string {
	cfg := s.cfg
	if tcp, ok := ln.Addr().(*net.TCPAddr); ok {
		cfg.Port = tcp.Port
	}
	return cfg.URL()
}
