package store

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	bolt "go.etcd.io/bbolt"

	"github.com/danieljhkim/dirstatus/internal/clock"
)

const (
	// DefaultMaxAttempts is the number of times Open tries before giving up.
	DefaultMaxAttempts = 10

	// DefaultRetryDelay is the pause between open attempts.
	DefaultRetryDelay = 100 * time.Millisecond

	// lockTimeout bounds a single attempt to take the database file lock.
	// Anything below bbolt's internal poll interval means one try per attempt.
	lockTimeout = time.Millisecond
)

// openFunc opens the database file. Tests replace it to simulate failures.
type openFunc func(path string, mode os.FileMode, opts *bolt.Options) (*bolt.DB, error)

type options struct {
	maxAttempts int
	retryDelay  time.Duration
	fileMode    os.FileMode
	clock       clock.Clock
	logger      zerolog.Logger
	open        openFunc
}

func defaultOptions() options {
	return options{
		maxAttempts: DefaultMaxAttempts,
		retryDelay:  DefaultRetryDelay,
		fileMode:    0o600,
		clock:       clock.RealClock{},
		logger:      zerolog.Nop(),
		open:        bolt.Open,
	}
}

// Option configures Open.
type Option func(*options)

// WithMaxAttempts sets how many times Open tries before returning an
// OpenError. Values below 1 are treated as 1.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.maxAttempts = n
	}
}

// WithRetryDelay sets the pause between open attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(o *options) {
		if d < 0 {
			d = 0
		}
		o.retryDelay = d
	}
}

// WithFileMode sets the permissions used when the database file is created.
func WithFileMode(mode os.FileMode) Option {
	return func(o *options) {
		o.fileMode = mode
	}
}

// WithClock sets the clock used to wait between attempts.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithLogger sets the logger that receives retry diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func withOpenFunc(fn openFunc) Option {
	return func(o *options) {
		o.open = fn
	}
}
