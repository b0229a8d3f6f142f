package engine

// PutRequest represents a request to store the status of a directory.
type PutRequest struct {
	// Path is the directory the status belongs to
	Path string

	// Branch is the checked-out branch, if any
	Branch string

	// RawStatus is the status in "count code|count code" form, if any
	RawStatus string

	// Detect reads branch and status from the git working tree at Path
	// for whichever of Branch and RawStatus is empty
	Detect bool
}

// GetRequest represents a request for the stored status of a directory.
type GetRequest struct {
	// Path is the directory to look up
	Path string
}
