package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/danieljhkim/dirstatus/internal/status"
	"github.com/danieljhkim/dirstatus/internal/store"
)

// Put stores the status described by req, replacing any previous record for
// the same canonical path.
func (e *Engine) Put(ctx context.Context, req *PutRequest) (*status.Record, error) {
	dir := status.Canonicalize(req.Path)
	if dir == "" {
		return nil, status.ErrEmptyPath
	}

	branch, raw := req.Branch, req.RawStatus

	if req.Detect && (strings.TrimSpace(branch) == "" || strings.TrimSpace(raw) == "") {
		detectedBranch, states, err := e.detector.Detect(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to detect status: %w", err)
		}
		if strings.TrimSpace(branch) == "" {
			branch = detectedBranch
		}
		if strings.TrimSpace(raw) == "" {
			raw = status.Encode(states)
		}
	}

	rec, err := status.NewRecord(req.Path, branch, raw)
	if err != nil {
		return nil, err
	}

	err = e.withStore(ctx, func(s *store.Store) error {
		return s.Put(rec)
	})
	if err != nil {
		return nil, err
	}

	e.logger.Debug().Str("path", rec.Path).Str("branch", rec.Branch).Msg("status stored")
	return rec, nil
}

// Get returns the stored status for req.Path. An unknown path yields an
// empty record and empty lines.
func (e *Engine) Get(ctx context.Context, req *GetRequest) (*GetResult, error) {
	var rec *status.Record
	err := e.withStore(ctx, func(s *store.Store) error {
		var err error
		rec, err = s.Get(req.Path)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &GetResult{
		Record:     rec,
		BranchLine: strings.TrimSpace(rec.Branch),
		StatusLine: rec.EncodedStates(),
	}, nil
}

// List returns every stored record. The order is the store's key order and
// callers should not depend on it.
func (e *Engine) List(ctx context.Context) ([]*status.Record, error) {
	var records []*status.Record
	err := e.withStore(ctx, func(s *store.Store) error {
		var err error
		records, err = s.List()
		return err
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
