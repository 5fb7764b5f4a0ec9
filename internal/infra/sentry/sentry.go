// Package sentry wires optional error reporting. Without a DSN every call is a no-op.
package sentry

import (
	"context"
	"log/slog"
	"time"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/getsentry/sentry-go"
	"go.uber.org/fx"
)

const flushTimeout = 2 * time.Second

// Params defines the dependencies of the reporter.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Reporter forwards server errors to Sentry when it is configured.
type Reporter struct {
	enabled bool
}

// New initializes the global Sentry client and flushes buffered events on shutdown.
func New(params Params) (*Reporter, error) {
	cfg := params.Config.Sentry
	if cfg == nil || cfg.DSN == "" {
		params.Logger.Info("Sentry not configured, error reporting disabled")

		return &Reporter{}, nil
	}

	environment := cfg.Environment
	if environment == "" {
		environment = params.Config.Env.Env
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.DSN,
		Environment:      environment,
		ServerName:       params.Config.Env.ServiceName,
		EnableTracing:    cfg.SampleRate > 0,
		TracesSampleRate: cfg.SampleRate,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize sentry")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sentry.Flush(flushTimeout)

			return nil
		},
	})

	return &Reporter{enabled: true}, nil
}

// Enabled reports whether events are sent anywhere.
func (r *Reporter) Enabled() bool {
	return r != nil && r.enabled
}

// Capture reports err on hub, falling back to the global hub when hub is nil.
func (r *Reporter) Capture(hub *sentry.Hub, err error) {
	if !r.Enabled() || err == nil {
		return
	}
	if hub == nil {
		hub = sentry.CurrentHub()
	}

	hub.CaptureException(err)
}
