package git

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// GoGitRepository implements Repository with go-git. It reads the
// repository directly and ignores url.<base>.insteadOf rewrites.
type GoGitRepository struct {
	repo *gogit.Repository
	root string
}

// OpenGoGit opens the repository containing dir, searching parent
// directories for .git.
func OpenGoGit(dir string) (*GoGitRepository, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, ErrNotRepository
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, gogit.ErrIsBareRepository) {
			return nil, ErrNotRepository
		}
		return nil, fmt.Errorf("failed to open work tree: %w", err)
	}

	return &GoGitRepository{repo: repo, root: wt.Filesystem.Root()}, nil
}

func (r *GoGitRepository) Root() string {
	return r.root
}

func (r *GoGitRepository) Remotes(_ context.Context) ([]string, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}
	names := make([]string, 0, len(remotes))
	for _, rem := range remotes {
		names = append(names, rem.Config().Name)
	}
	slices.Sort(names)
	return names, nil
}

func (r *GoGitRepository) RemoteURL(ctx context.Context, name string) (string, error) {
	rem, err := r.repo.Remote(name)
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			remotes, _ := r.Remotes(ctx)
			return "", &RemoteNotFoundError{Name: name, Remotes: remotes}
		}
		return "", fmt.Errorf("failed to read remote %s: %w", name, err)
	}
	urls := rem.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %s has no URL", name)
	}
	return urls[0], nil
}

func (r *GoGitRepository) CurrentBranch(_ context.Context) (string, error) {
	head, err := r.repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() == plumbing.SymbolicReference && head.Target().IsBranch() {
		return head.Target().Short(), nil
	}
	return "", nil
}

func (r *GoGitRepository) HeadCommit(_ context.Context) (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

func (r *GoGitRepository) DefaultBranch(_ context.Context, remote string) (string, error) {
	if remote != "" {
		ref, err := r.repo.Reference(plumbing.NewRemoteHEADReferenceName(remote), false)
		if err == nil && ref.Type() == plumbing.SymbolicReference {
			prefix := "refs/remotes/" + remote + "/"
			if name := ref.Target().String(); strings.HasPrefix(name, prefix) {
				return strings.TrimPrefix(name, prefix), nil
			}
		}
	}

	for _, b := range fallbackBranches {
		if _, err := r.repo.Reference(plumbing.NewBranchReferenceName(b), false); err == nil {
			return b, nil
		}
	}
	return "", nil
}

func (r *GoGitRepository) IsTag(_ context.Context, ref string) bool {
	if ref == "" {
		return false
	}
	_, err := r.repo.Reference(plumbing.NewTagReferenceName(ref), false)
	return err == nil
}
