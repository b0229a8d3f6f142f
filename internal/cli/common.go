package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/danieljhkim/dirstatus/internal/clock"
	"github.com/danieljhkim/dirstatus/internal/config"
	"github.com/danieljhkim/dirstatus/internal/engine"
	"github.com/danieljhkim/dirstatus/internal/gitx"
	"github.com/danieljhkim/dirstatus/internal/logging"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(opts *globalOptions) (*engine.Engine, error) {
	paths, err := config.DefaultPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}

	settings, err := config.LoadSettings(paths.Config)
	if err != nil {
		return nil, err
	}

	logger := logging.New(os.Stderr, opts.verbose)

	return engine.New(*paths, settings, gitx.NewGoGitDetector(), clock.RealClock{}, logger), nil
}

// outputJSON writes a value as indented JSON to w.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
