// Package gitx reads branch and working-tree status from a git repository.
//
// It is used by `dirstatus put --detect` to fill in values the caller did not
// pass explicitly. Detection is done in-process with go-git; no git binary
// is required.
package gitx

import (
	"errors"
	"fmt"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepository indicates the directory is not inside a git working tree.
var ErrNotRepository = errors.New("not a git repository")

// UntrackedCode is the porcelain code counted for untracked files.
const UntrackedCode = "??"

// Detector inspects a directory's version-control state.
type Detector interface {
	// Detect returns the checked-out branch (empty when HEAD is detached) and
	// the number of changed files per porcelain status code.
	Detect(dir string) (branch string, states map[string]uint64, err error)
}

// GoGitDetector implements Detector with go-git.
type GoGitDetector struct{}

// NewGoGitDetector creates a new GoGitDetector.
func NewGoGitDetector() *GoGitDetector {
	return &GoGitDetector{}
}

// Detect opens the repository containing dir and summarizes its status.
func (d *GoGitDetector) Detect(dir string) (string, map[string]uint64, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", nil, fmt.Errorf("%w: %s", ErrNotRepository, dir)
		}
		return "", nil, fmt.Errorf("failed to open repository at %s: %w", dir, err)
	}

	branch, err := currentBranch(repo)
	if err != nil {
		return "", nil, err
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	st, err := worktree.Status()
	if err != nil {
		return "", nil, fmt.Errorf("failed to read worktree status: %w", err)
	}

	states := make(map[string]uint64)
	for _, fs := range st {
		if code := porcelainCode(fs); code != "" {
			states[code]++
		}
	}

	return branch, states, nil
}

// currentBranch returns the short name of the branch HEAD points at. An
// unborn branch (no commits yet) still reports its name.
func currentBranch(repo *gogit.Repository) (string, error) {
	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}

	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		return head.Target().Short(), nil
	}
	return "", nil
}

// porcelainCode renders a file status the way `git status --porcelain` does,
// with the column padding removed ("M ", " M" -> "M").
func porcelainCode(fs *gogit.FileStatus) string {
	if fs.Staging == gogit.Untracked && fs.Worktree == gogit.Untracked {
		return UntrackedCode
	}
	return strings.TrimSpace(string([]byte{byte(fs.Staging), byte(fs.Worktree)}))
}

// FakeDetector implements Detector with predetermined values for testing.
type FakeDetector struct {
	Branch string
	States map[string]uint64
	Err    error

	// Dirs records every directory passed to Detect.
	Dirs []string
}

// Detect returns the configured values.
func (f *FakeDetector) Detect(dir string) (string, map[string]uint64, error) {
	f.Dirs = append(f.Dirs, dir)
	if f.Err != nil {
		return "", nil, f.Err
	}
	return f.Branch, f.States, nil
}
