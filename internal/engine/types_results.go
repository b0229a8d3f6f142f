package engine

import "github.com/danieljhkim/dirstatus/internal/status"

// GetResult represents the stored status of a directory.
type GetResult struct {
	// Record is the stored record, or an empty record when none exists
	Record *status.Record `json:"record"`

	// BranchLine is the branch, trimmed
	BranchLine string `json:"branch_line"`

	// StatusLine is the encoded file states, sorted by code
	StatusLine string `json:"status_line"`
}
