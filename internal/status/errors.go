package status

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates a raw status string does not follow the count/code grammar.
	ErrParse = errors.New("malformed status")

	// ErrEmptyPath indicates a record path is empty after canonicalization.
	ErrEmptyPath = errors.New("path is empty")
)

// ParseError describes the segment of a raw status string that failed to decode.
type ParseError struct {
	// Segment is the offending segment, trimmed.
	Segment string

	// Reason is a short human-readable explanation.
	Reason string

	// Err is the underlying cause, if any (e.g. a strconv error).
	Err error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: segment %q: %s: %v", ErrParse, e.Segment, e.Reason, e.Err)
	}
	return fmt.Sprintf("%v: segment %q: %s", ErrParse, e.Segment, e.Reason)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse as a match so callers can test with errors.Is.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
