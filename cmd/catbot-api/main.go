package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/catbot/catbot-api/app"
	"github.com/catbot/catbot-api/config"
	"github.com/catbot/catbot-api/internal/observability"
	"github.com/catbot/catbot-api/routes"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config.NewProvider(), nil); err != nil {
		report(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// run loads settings, opens the listener and serves until ctx is cancelled.
// A nil listen function listens on the configured address.
func run(ctx context.Context, provider *config.Provider, listen func(addr string) (net.Listener, error)) error {
	settings, err := provider.Get()
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(settings.LogLevel, settings.LogFormat, bool(settings.Debug))
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if listen == nil {
		listen = func(addr string) (net.Listener, error) { return net.Listen("tcp", addr) }
	}
	ln, err := listen(settings.Address())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", settings.Address(), err)
	}

	return app.Run(ctx, settings, logger, ln, routes.SetupRoutes)
}

func report(w io.Writer, err error) {
	var cfgErr *config.ConfigurationError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(w, "catbot-api: invalid configuration: %v\n", cfgErr)
		return
	}
	fmt.Fprintf(w, "catbot-api: %v\n", err)
}
