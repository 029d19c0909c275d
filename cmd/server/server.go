package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func newMux(config Config, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", handleIndexPage(config, logger))
	mux.Handle("GET /paths", handlePaths(config, logger))
	mux.Handle("GET /", handleStatic(config.Dir, logger))
	return mux
}

func newServer(config Config, logger *slog.Logger) *http.Server {
	var handler http.Handler = newMux(config, logger)
	handler = limitRequests(newRateLimiter(config), handler)
	handler = logRequests(logger, handler)
	return &http.Server{
		Addr:              config.addr(),
		Handler:           handler,
		ReadHeaderTimeout: 2 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

// serve blocks until ctx is canceled or the listener fails, then shuts the
// server down within config.ShutdownTimeout.
func serve(ctx context.Context, config Config, logger *slog.Logger, ln net.Listener) error {
	srv := newServer(config, logger)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx := context.Background()
	if config.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		shutdownCtx, cancel = context.WithTimeout(shutdownCtx, config.ShutdownTimeout)
		defer cancel()
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func listenAndServe(config Config, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", config.addr())
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.Info("listening", "addr", ln.Addr().String(), "dir", config.Dir, "strict", config.Strict)
	return serve(ctx, config, logger, ln)
}
