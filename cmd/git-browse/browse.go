package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/raphi011/git-browse/internal/config"
	"github.com/raphi011/git-browse/internal/git"
	"github.com/raphi011/git-browse/internal/log"
	"github.com/raphi011/git-browse/internal/output"
	"github.com/raphi011/git-browse/internal/request"
	"github.com/raphi011/git-browse/internal/resolve"
	"github.com/raphi011/git-browse/internal/ui/prompt"
)

type browseFlags struct {
	ref         string
	line        uint
	commits     bool
	raw         bool
	blame       bool
	urlOnly     bool
	copy        bool
	remote      string
	root        string
	interactive bool
}

func runBrowse(ctx context.Context, d *deps, target string, f browseFlags) error {
	l := log.FromContext(ctx)

	cfg, err := d.loadConfig()
	if err != nil {
		return err
	}
	if f.remote != "" {
		cfg.Remote = f.remote
	}

	repo, err := d.openRepo(ctx, git.Backend(cfg.Backend), d.workDir)
	if err != nil {
		return err
	}
	l.Debug("opened repository", "root", repo.Root(), "backend", cfg.Backend)

	remoteName, remoteURL, err := chooseRemote(ctx, d, repo, cfg.Remote, f.interactive)
	if err != nil {
		return err
	}
	l.Debug("using remote", "name", remoteName, "url", remoteURL)

	rc, err := repoContext(ctx, d, repo, cfg, remoteName)
	if err != nil {
		return err
	}

	res, err := resolve.Resolve(resolve.Input{
		RemoteURL: remoteURL,
		Domains:   cfg.Domains(),
		Root:      f.root,
		Args: request.Input{
			Target:  target,
			Ref:     f.ref,
			Line:    f.line,
			Raw:     f.raw,
			Blame:   f.blame,
			Commits: f.commits,
		},
		Context: rc,
	})
	if err != nil {
		return err
	}
	l.Debug("resolved", "host", res.Identity.Kind, "view", res.View, "ref", res.Request.Ref)

	if f.copy {
		if err := d.copy(res.URL); err != nil {
			return err
		}
		l.Printf("Copied %s to clipboard\n", res.URL)
	}

	if f.urlOnly {
		output.FromContext(ctx).URL(res.URL)
		return nil
	}

	l.Printf("Opening %s\n", res.URL)
	return d.open(ctx, res.URL)
}

// repoContext gathers the repository state the resolver needs.
func repoContext(ctx context.Context, d *deps, repo git.Repository, cfg config.Config, remoteName string) (request.Context, error) {
	branch, err := repo.CurrentBranch(ctx)
	if err != nil {
		return request.Context{}, err
	}
	head, err := repo.HeadCommit(ctx)
	if err != nil {
		return request.Context{}, err
	}

	defaultBranch := cfg.DefaultBranch
	if defaultBranch == "" {
		if defaultBranch, err = repo.DefaultBranch(ctx, remoteName); err != nil {
			return request.Context{}, err
		}
	}

	prefix, err := git.WorkingPrefix(repo.Root(), d.workDir, d.getenv)
	if err != nil {
		return request.Context{}, err
	}

	log.FromContext(ctx).Debug("repository state", "branch", branch, "head", head, "default", defaultBranch, "prefix", prefix)

	return request.Context{
		Branch:        branch,
		Head:          head,
		DefaultBranch: defaultBranch,
		Root:          repo.Root(),
		Prefix:        prefix,
		FS:            os.DirFS(repo.Root()),
		IsTag: func(ref string) bool {
			return repo.IsTag(ctx, ref)
		},
	}, nil
}

// chooseRemote returns the remote to browse. The picker is shown when
// asked for, or when the configured remote is missing and there is more
// than one candidate on a terminal.
func chooseRemote(ctx context.Context, d *deps, repo git.Repository, name string, interactive bool) (string, string, error) {
	if !interactive {
		u, err := repo.RemoteURL(ctx, name)
		if err == nil {
			return name, u, nil
		}
		var rnf *git.RemoteNotFoundError
		if !errors.As(err, &rnf) {
			return "", "", err
		}
		switch {
		case len(rnf.Remotes) == 0:
			return "", "", git.ErrNoRemotes
		case len(rnf.Remotes) == 1:
			log.FromContext(ctx).Debug("remote not found, using the only remote", "wanted", name, "using", rnf.Remotes[0])
			u, err := repo.RemoteURL(ctx, rnf.Remotes[0])
			return rnf.Remotes[0], u, err
		case !d.interactive:
			if s := config.Suggest(name, rnf.Remotes); s != "" {
				return "", "", fmt.Errorf("%w; did you mean %q?", rnf, s)
			}
			return "", "", rnf
		}
	}

	if !d.interactive {
		return "", "", usageErrorf("--interactive requires a terminal")
	}

	remotes, err := repo.Remotes(ctx)
	if err != nil {
		return "", "", err
	}
	if len(remotes) == 0 {
		return "", "", git.ErrNoRemotes
	}

	options := make([]prompt.Option, len(remotes))
	urls := make([]string, len(remotes))
	initial := 0
	for i, r := range remotes {
		u, err := repo.RemoteURL(ctx, r)
		if err != nil {
			return "", "", err
		}
		urls[i] = u
		options[i] = prompt.Option{Label: r, Detail: u}
		if r == name {
			initial = i
		}
	}

	res, err := d.pick("Select remote", options, initial)
	if err != nil {
		return "", "", fmt.Errorf("remote picker: %w", err)
	}
	if res.Cancelled {
		return "", "", errCancelled
	}
	return res.Value, urls[res.Index], nil
}
