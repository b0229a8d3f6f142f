// Package store persists status records in a bbolt database.
//
// A Store is opened once per process invocation. Several shells rendering at
// the same moment may race for the database file lock, so Open retries a
// bounded number of times before failing with an OpenError. Every Put is
// committed and synced before it returns.
package store

import (
	"errors"
	"fmt"
	"iter"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"

	"github.com/danieljhkim/dirstatus/internal/status"
)

// FileName is the database file created inside the store directory.
const FileName = "status.db"

var bucketName = []byte("statuses")

// errStopIteration ends a cursor walk when the consumer stops ranging.
var errStopIteration = errors.New("stop iteration")

// Store is a durable map from canonical path to status.Record.
type Store struct {
	db *bolt.DB
}

// Open opens or creates the store in the directory location. A failed attempt
// is retried after the configured delay until the attempt budget runs out.
func Open(location string, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	path := filepath.Join(location, FileName)
	log := o.logger.With().Str("path", path).Logger()
	start := o.clock.Now()

	var lastErr error
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		db, err := o.open(path, o.fileMode, &bolt.Options{Timeout: lockTimeout})
		if err == nil {
			s := &Store{db: db}
			if err := s.init(); err != nil {
				_ = db.Close()
				return nil, err
			}
			log.Debug().Int("attempt", attempt).Dur("elapsed", o.clock.Now().Sub(start)).Msg("store opened")
			return s, nil
		}

		lastErr = err
		log.Debug().Err(err).Int("attempt", attempt).Int("max_attempts", o.maxAttempts).Msg("store open failed")

		if attempt < o.maxAttempts {
			o.clock.Sleep(o.retryDelay)
		}
	}

	log.Warn().Err(lastErr).Int("attempts", o.maxAttempts).Dur("elapsed", o.clock.Now().Sub(start)).Msg("giving up on store open")
	return nil, &OpenError{Location: location, Attempts: o.maxAttempts, Err: lastErr}
}

// init makes sure the records bucket exists. The write transaction only runs
// the first time, so opening an existing store does not commit or fsync.
func (s *Store) init() error {
	var exists bool
	err := s.db.View(func(tx *bolt.Tx) error {
		exists = tx.Bucket(bucketName) != nil
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: failed to read bucket: %w", ErrIO, err)
	}
	if exists {
		return nil
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: failed to create bucket: %w", ErrIO, err)
	}
	return nil
}

// Put inserts or replaces the record stored under rec.Path and syncs the
// database file before returning. rec.Path must already be canonical, as
// produced by status.NewRecord.
func (s *Store) Put(rec *status.Record) error {
	if s.db == nil {
		return ErrClosed
	}
	if rec == nil || rec.Path == "" {
		return status.ErrEmptyPath
	}

	data, err := msgpack.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrSerialize, rec.Path, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(rec.Path), data)
	})
	if err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrIO, rec.Path, err)
	}

	if err := s.db.Sync(); err != nil {
		return fmt.Errorf("%w: failed to flush: %w", ErrIO, err)
	}

	return nil
}

// Get returns the record stored for path after canonicalizing it. A path
// that was never stored yields an empty record, not an error.
func (s *Store) Get(path string) (*status.Record, error) {
	if s.db == nil {
		return nil, ErrClosed
	}

	key := status.Canonicalize(path)

	var rec *status.Record
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketName).Get([]byte(key))
		if data == nil {
			return nil
		}
		var err error
		rec, err = decodeRecord(key, data)
		return err
	})
	if err != nil {
		return nil, err
	}

	if rec == nil {
		return status.Empty(key), nil
	}
	return rec, nil
}

// All returns a sequence over every stored record in key byte order. Each
// range runs its own read transaction, so the sequence can be consumed more
// than once. A decode failure is yielded as the final element.
func (s *Store) All() iter.Seq2[*status.Record, error] {
	return func(yield func(*status.Record, error) bool) {
		if s.db == nil {
			yield(nil, ErrClosed)
			return
		}

		err := s.db.View(func(tx *bolt.Tx) error {
			c := tx.Bucket(bucketName).Cursor()
			for k, v := c.First(); k != nil; k, v = c.Next() {
				rec, err := decodeRecord(string(k), v)
				if err != nil {
					return err
				}
				if !yield(rec, nil) {
					return errStopIteration
				}
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopIteration) {
			yield(nil, err)
		}
	}
}

// List collects All into a slice.
func (s *Store) List() ([]*status.Record, error) {
	var records []*status.Record
	for rec, err := range s.All() {
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Close releases the database file lock. Calling Close more than once is a no-op.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("%w: failed to close: %w", ErrIO, err)
	}
	return nil
}

func decodeRecord(key string, data []byte) (*status.Record, error) {
	var rec status.Record
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDeserialize, key, err)
	}
	if rec.FileStates == nil {
		rec.FileStates = map[string]uint64{}
	}
	return &rec, nil
}
