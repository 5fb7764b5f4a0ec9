package sentry

import (
	"io"
	"log/slog"
	"testing"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNew_WithoutDSNIsDisabled(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	reporter, err := New(Params{
		Lc:     lc,
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.NoError(t, err)
	assert.False(t, reporter.Enabled())

	// Must not panic while disabled.
	reporter.Capture(nil, errors.New("boom"))
}

func TestNilReporterIsDisabled(t *testing.T) {
	var reporter *Reporter
	assert.False(t, reporter.Enabled())
}
