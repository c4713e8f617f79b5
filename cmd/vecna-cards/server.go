package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ericogr/vecna-cards/internal/logging"
	"github.com/ericogr/vecna-cards/internal/service"
)

const shutdownTimeout = 10 * time.Second

// reaperInterval scans a few times per TTL, but at least once a minute.
func reaperInterval(ttl time.Duration) time.Duration {
	d := ttl / 4
	if d <= 0 || d > time.Minute {
		d = time.Minute
	}
	return d
}

// serve runs the HTTP server and the idle reaper until SIGINT or SIGTERM.
func serve(addr string, handler http.Handler, manager *service.Manager, ttl time.Duration) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager.StartIdleReaper(ctx, reaperInterval(ttl))

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("Shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	// Encounters still in memory are recorded as abandoned.
	n := manager.Shutdown()
	logging.Info("Server stopped", logging.Fields{"expired": n})
	return nil
}
