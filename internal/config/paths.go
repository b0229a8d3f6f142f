// Package config manages dirstatus configuration and filesystem paths.
//
// All state lives under one per-user root directory, by default
// ~/.config/git-status-tracker, which holds the status database and an
// optional config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// RootEnv overrides the root directory when set.
const RootEnv = "DIRSTATUS_ROOT"

// Paths contains all the filesystem paths used by dirstatus.
type Paths struct {
	// Root is the base directory for all dirstatus data (default: ~/.config/git-status-tracker)
	Root string

	// Database is the directory handed to store.Open
	Database string

	// Config is the path to the optional settings file
	Config string
}

// DefaultPaths returns the default paths for dirstatus.
// Paths can be overridden with environment variables:
// - DIRSTATUS_ROOT: Override the root directory
func DefaultPaths() (*Paths, error) {
	root := os.Getenv(RootEnv)
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		root = filepath.Join(home, ".config", "git-status-tracker")
	}

	return PathsAt(root), nil
}

// PathsAt returns the paths rooted at root.
func PathsAt(root string) *Paths {
	return &Paths{
		Root:     root,
		Database: root,
		Config:   filepath.Join(root, "config.yaml"),
	}
}

// EnsureDirectories creates all necessary directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.Root, p.Database} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}
