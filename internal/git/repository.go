package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Repository is the read-only view of a local repository.
type Repository interface {
	// Root returns the absolute work tree path.
	Root() string

	// Remotes lists the configured remote names, sorted.
	Remotes(ctx context.Context) ([]string, error)

	// RemoteURL returns the fetch URL of the named remote.
	RemoteURL(ctx context.Context, name string) (string, error)

	// CurrentBranch returns the checked-out branch, or "" on a detached HEAD.
	CurrentBranch(ctx context.Context) (string, error)

	// HeadCommit returns the full hash HEAD points at, or "" in an empty
	// repository.
	HeadCommit(ctx context.Context) (string, error)

	// DefaultBranch returns the primary branch as advertised by the
	// remote's HEAD, falling back to a local master or main. Returns ""
	// when none is found.
	DefaultBranch(ctx context.Context, remote string) (string, error)

	// IsTag reports whether ref names a tag.
	IsTag(ctx context.Context, ref string) bool
}

// Backend selects a Repository implementation.
type Backend string

const (
	BackendExec  Backend = "exec"
	BackendGoGit Backend = "go-git"
)

// Backends lists the valid backend names.
var Backends = []string{string(BackendExec), string(BackendGoGit)}

// Open opens the repository containing dir with the given backend.
// An empty backend means BackendExec.
func Open(ctx context.Context, backend Backend, dir string) (Repository, error) {
	switch backend {
	case "", BackendExec:
		return OpenExec(ctx, dir)
	case BackendGoGit:
		return OpenGoGit(dir)
	}
	return nil, fmt.Errorf("unknown git backend %q (valid: %s)", backend, strings.Join(Backends, ", "))
}

// RemoteNotFoundError is returned when a named remote does not exist.
type RemoteNotFoundError struct {
	Name    string
	Remotes []string
}

func (e *RemoteNotFoundError) Error() string {
	if len(e.Remotes) == 0 {
		return fmt.Sprintf("no such remote %q", e.Name)
	}
	return fmt.Sprintf("no such remote %q (available: %s)", e.Name, strings.Join(e.Remotes, ", "))
}

// WorkingPrefix returns the slash-separated path of cwd below root, or ""
// at the top level. A non-empty GIT_PREFIX from getenv wins, since git
// aliases run from the top level.
func WorkingPrefix(root, cwd string, getenv func(string) string) (string, error) {
	if getenv != nil {
		if p := strings.Trim(filepath.ToSlash(getenv("GIT_PREFIX")), "/"); p != "" {
			return p, nil
		}
	}

	root = realPath(root)
	cwd = realPath(cwd)
	rel, err := filepath.Rel(root, cwd)
	if err != nil {
		return "", fmt.Errorf("working directory %s: %w", cwd, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("working directory %s is outside work tree %s", cwd, root)
	}
	if rel == "." {
		return "", nil
	}
	return rel, nil
}

// realPath resolves symlinks so /tmp and /private/tmp compare equal on macOS.
func realPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return p
}
