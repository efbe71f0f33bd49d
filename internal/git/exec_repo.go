package git

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ExecRepository implements Repository with the git CLI.
type ExecRepository struct {
	root string
}

// OpenExec locates the work tree containing dir.
func OpenExec(ctx context.Context, dir string) (*ExecRepository, error) {
	if err := CheckGit(); err != nil {
		return nil, err
	}
	root, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if strings.Contains(err.Error(), "not a git repository") {
			return nil, ErrNotRepository
		}
		return nil, fmt.Errorf("failed to locate work tree: %w", err)
	}
	if root == "" {
		// bare repository or inside .git
		return nil, ErrNotRepository
	}
	return &ExecRepository{root: root}, nil
}

func (r *ExecRepository) Root() string {
	return r.root
}

func (r *ExecRepository) Remotes(ctx context.Context) ([]string, error) {
	out, err := outputGit(ctx, r.root, "remote")
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	remotes := strings.Fields(out)
	slices.Sort(remotes)
	return remotes, nil
}

func (r *ExecRepository) RemoteURL(ctx context.Context, name string) (string, error) {
	out, err := outputGit(ctx, r.root, "remote", "get-url", name)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		remotes, _ := r.Remotes(ctx)
		if !slices.Contains(remotes, name) {
			return "", &RemoteNotFoundError{Name: name, Remotes: remotes}
		}
		return "", fmt.Errorf("failed to get URL of remote %s: %w", name, err)
	}
	return out, nil
}

func (r *ExecRepository) CurrentBranch(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, r.root, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("failed to get branch: %w", err)
	}
	return out, nil
}

func (r *ExecRepository) HeadCommit(ctx context.Context) (string, error) {
	out, err := outputGit(ctx, r.root, "rev-parse", "--verify", "--quiet", "HEAD")
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		// unborn branch
		return "", nil
	}
	return out, nil
}

func (r *ExecRepository) DefaultBranch(ctx context.Context, remote string) (string, error) {
	if remote != "" {
		prefix := "refs/remotes/" + remote + "/"
		out, err := outputGit(ctx, r.root, "symbolic-ref", "--quiet", prefix+"HEAD")
		if err == nil && strings.HasPrefix(out, prefix) {
			return strings.TrimPrefix(out, prefix), nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
	}

	for _, b := range fallbackBranches {
		if runGit(ctx, r.root, "rev-parse", "--verify", "--quiet", "refs/heads/"+b) == nil {
			return b, nil
		}
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return "", nil
}

func (r *ExecRepository) IsTag(ctx context.Context, ref string) bool {
	if ref == "" {
		return false
	}
	return runGit(ctx, r.root, "show-ref", "--verify", "--quiet", "refs/tags/"+ref) == nil
}

// fallbackBranches are tried in order when the remote has no HEAD.
var fallbackBranches = []string{"master", "main"}
