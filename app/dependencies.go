package app

import (
	"context"
	"sync"
	"time"

	"github.com/catbot/catbot-api/config"
	"go.uber.org/zap"
)

// Dependencies is the handle returned by Start and released by Close.
// Process-wide resources belong here so Close can release them.
type Dependencies struct {
	Settings config.Settings
	Logger   *zap.Logger
	Metadata Metadata

	startedAt time.Time
	closeOnce sync.Once
}

// Start runs the startup phase of the application lifecycle.
func Start(ctx context.Context, settings config.Settings, logger *zap.Logger) (*Dependencies, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	deps := &Dependencies{
		Settings:  settings,
		Logger:    logger,
		Metadata:  DefaultMetadata(),
		startedAt: time.Now(),
	}

	logger.Info("starting up",
		zap.String("app", settings.AppName),
		zap.String("environment", settings.Environment),
		zap.Bool("debug", bool(settings.Debug)),
		zap.String("database", settings.DatabaseLogString()),
		zap.Strings("cors_origins", settings.CORSOrigins),
	)

	return deps, nil
}

// Close runs the shutdown phase. Only the first call has any effect.
func (d *Dependencies) Close(ctx context.Context) error {
	d.closeOnce.Do(func() {
		d.Logger.Info("shutting down",
			zap.String("app", d.Settings.AppName),
			zap.Duration("uptime", time.Since(d.startedAt)),
		)
		_ = d.Logger.Sync()
	})
	return nil
}
