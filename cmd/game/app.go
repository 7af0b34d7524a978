package main

import (
	"context"
	"fmt"

	"templeescape/internal/config"
	"templeescape/internal/debug"
	"templeescape/internal/logging"
	"templeescape/internal/observability"
	"templeescape/internal/session"
)

type app struct {
	cfg            *config.Config
	logger         *debug.Logger
	tracerProvider *observability.TracerProvider
	turnLogger     *logging.TurnLogger
	session        *session.Session
}

func createApp(ctx context.Context, cfg *config.Config) (*app, error) {
	logger, err := debug.NewLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	a := &app{cfg: cfg, logger: logger}

	a.tracerProvider, err = observability.InitTracing(ctx, cfg.Tracing)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	if a.tracerProvider.IsEnabled() {
		logger.Info("OpenTelemetry tracing initialized and enabled")
	} else {
		logger.Debug("OpenTelemetry tracing disabled (set OTEL_TRACES_ENABLED=true to enable)")
	}

	opts := session.Options{
		Logger:    logger,
		Tracer:    a.tracerProvider.Tracer("temple-escape/session"),
		WrapWidth: cfg.WrapWidth,
	}

	if cfg.TurnLogPath != "" {
		a.turnLogger, err = logging.NewTurnLogger(cfg.TurnLogPath)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("failed to initialize turn log: %w", err)
		}
		opts.Recorder = a.turnLogger
		logger.Debug("Recording turns", "path", cfg.TurnLogPath)
	}

	a.session = session.New(opts)
	logger.Debug("Starting temple escape", "session_id", a.session.ID().String())
	return a, nil
}

func (a *app) close() {
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			a.logger.Warn("failed to shut down tracing", "error", err)
		}
	}
	if a.turnLogger != nil {
		if err := a.turnLogger.Close(); err != nil {
			a.logger.Warn("failed to close turn log", "error", err)
		}
	}
	_ = a.logger.Close()
}
