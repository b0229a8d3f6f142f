package status

import (
	"fmt"
	"strings"
)

// Record is the persisted snapshot for one directory.
type Record struct {
	// Path is the canonical directory path and the record's store key.
	Path string `json:"path" msgpack:"path"`

	// Branch is the checked-out branch, empty when unknown or detached.
	Branch string `json:"branch" msgpack:"branch"`

	// FileStates maps a porcelain status code to the number of files in that state.
	FileStates map[string]uint64 `json:"file_states" msgpack:"file_states"`
}

// NewRecord builds a record from user input. The path is canonicalized, the
// branch trimmed, and raw decoded with Decode.
func NewRecord(path, branch, raw string) (*Record, error) {
	canonical := Canonicalize(path)
	if canonical == "" {
		return nil, ErrEmptyPath
	}

	states, err := Decode(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode status for %s: %w", canonical, err)
	}

	return &Record{
		Path:       canonical,
		Branch:     strings.TrimSpace(branch),
		FileStates: states,
	}, nil
}

// Empty returns the zero record for path, used when nothing is stored.
func Empty(path string) *Record {
	return &Record{
		Path:       path,
		FileStates: map[string]uint64{},
	}
}

// EncodedStates returns the display form of the record's file states.
func (r *Record) EncodedStates() string {
	return Encode(r.FileStates)
}

// String renders the record as a single list line: "<path>: <branch> <states>".
func (r *Record) String() string {
	return fmt.Sprintf("%s: %s %v", r.Path, r.Branch, r.FileStates)
}
