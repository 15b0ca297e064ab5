package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/catbot/catbot-api/config"
	"go.uber.org/zap"
)

// HandlerBuilder builds the HTTP handler once dependencies are available.
type HandlerBuilder func(*Dependencies) http.Handler

// Run starts the lifecycle, serves on ln until ctx is cancelled or the server
// fails, drains in-flight requests within ShutdownTimeout and then closes the
// lifecycle.
func Run(ctx context.Context, settings config.Settings, logger *zap.Logger, ln net.Listener, build HandlerBuilder) error {
	deps, err := Start(ctx, settings, logger)
	if err != nil {
		_ = ln.Close()
		return fmt.Errorf("startup failed: %w", err)
	}

	srv := &http.Server{
		Handler:           build(deps),
		ReadTimeout:       settings.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      settings.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()
	deps.Logger.Info("listening", zap.String("address", ln.Addr().String()))

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			runErr = fmt.Errorf("server error: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), settings.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("graceful shutdown failed: %w", err)
	}

	if err := deps.Close(shutdownCtx); err != nil && runErr == nil {
		runErr = fmt.Errorf("failed to close dependencies: %w", err)
	}

	return runErr
}
