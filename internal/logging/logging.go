// Package logging builds the zerolog logger shared by the CLI, engine and store.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// LevelEnv selects the log level (debug, info, warn, error) when set.
const LevelEnv = "DIRSTATUS_LOG"

// New returns a console logger writing to w. verbose forces debug level;
// otherwise DIRSTATUS_LOG is consulted and warn is the default.
func New(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if env := strings.TrimSpace(os.Getenv(LevelEnv)); env != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(env)); err == nil {
			level = parsed
		}
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		TimeFormat: "15:04:05.000",
	}

	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
