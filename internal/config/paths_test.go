package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	t.Run("returns paths based on home directory", func(t *testing.T) {
		t.Setenv(RootEnv, "")

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		home, _ := os.UserHomeDir()
		expectedRoot := filepath.Join(home, ".config", "git-status-tracker")
		if paths.Root != expectedRoot {
			t.Errorf("Expected root %s, got %s", expectedRoot, paths.Root)
		}
		if paths.Database != paths.Root {
			t.Errorf("Database path incorrect: got %s", paths.Database)
		}
		if paths.Config != filepath.Join(paths.Root, "config.yaml") {
			t.Errorf("Config path incorrect: got %s", paths.Config)
		}
	})

	t.Run("respects DIRSTATUS_ROOT environment variable", func(t *testing.T) {
		customRoot := "/custom/dirstatus/path"
		t.Setenv(RootEnv, customRoot)

		paths, err := DefaultPaths()
		if err != nil {
			t.Fatalf("DefaultPaths failed: %v", err)
		}

		if paths.Root != customRoot {
			t.Errorf("Expected root %s, got %s", customRoot, paths.Root)
		}
		if paths.Config != filepath.Join(customRoot, "config.yaml") {
			t.Errorf("Config should be under custom root, got: %s", paths.Config)
		}
	})
}

func TestEnsureDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "root")
	paths := PathsAt(root)

	if err := paths.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}

	info, err := os.Stat(paths.Database)
	if err != nil {
		t.Fatalf("expected database directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Errorf("expected %s to be a directory", paths.Database)
	}

	// Idempotent
	if err := paths.EnsureDirectories(); err != nil {
		t.Errorf("second EnsureDirectories failed: %v", err)
	}
}
