package status

import (
	"os"
	"strings"
)

// Canonicalize normalizes a directory path into its store key: surrounding
// whitespace is trimmed and a single trailing separator is dropped. A bare
// separator (the filesystem root) is returned unchanged.
func Canonicalize(path string) string {
	path = strings.TrimSpace(path)
	if len(path) <= 1 {
		return path
	}

	last := path[len(path)-1]
	if last == '/' || last == os.PathSeparator {
		return path[:len(path)-1]
	}
	return path
}
