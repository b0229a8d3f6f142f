// Package engine provides the operations behind the dirstatus commands.
//
// The engine sits between the CLI and the lower-level packages. Each
// operation opens the status store once, performs a single read or write,
// and closes the store again on every exit path.
//
// Key components:
//   - Put: builds a status.Record (optionally detected via gitx) and stores it
//   - Get: reads one record and renders its branch and status lines
//   - List: enumerates every stored record
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/danieljhkim/dirstatus/internal/clock"
	"github.com/danieljhkim/dirstatus/internal/config"
	"github.com/danieljhkim/dirstatus/internal/gitx"
	"github.com/danieljhkim/dirstatus/internal/store"
)

// Engine orchestrates all dirstatus operations.
// It is the main API surface called by the CLI.
type Engine struct {
	paths    config.Paths
	settings config.Settings
	detector gitx.Detector
	clock    clock.Clock
	logger   zerolog.Logger
}

// New creates a new Engine with the given dependencies.
func New(
	paths config.Paths,
	settings config.Settings,
	detector gitx.Detector,
	clk clock.Clock,
	logger zerolog.Logger,
) *Engine {
	return &Engine{
		paths:    paths,
		settings: settings,
		detector: detector,
		clock:    clk,
		logger:   logger,
	}
}

// withStore opens the store, runs fn and closes the store. A close failure is
// joined with whatever fn returned.
func (e *Engine) withStore(ctx context.Context, fn func(*store.Store) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := e.paths.EnsureDirectories(); err != nil {
		return err
	}

	s, err := store.Open(e.paths.Database,
		store.WithMaxAttempts(e.settings.OpenAttempts),
		store.WithRetryDelay(e.settings.RetryDelay),
		store.WithClock(e.clock),
		store.WithLogger(e.logger),
	)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := s.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close store: %w", cerr))
		}
	}()

	return fn(s)
}
