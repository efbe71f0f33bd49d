package git

import (
	"errors"
	"os/exec"
)

// ErrGitNotFound indicates git is not installed or not in PATH.
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com) or set backend = \"go-git\"")

// ErrNotRepository is returned when the directory is not inside a work tree.
var ErrNotRepository = errors.New("not a git repository (or any of the parent directories)")

// ErrNoRemotes is returned when the repository has no remotes configured.
var ErrNoRemotes = errors.New("repository has no remotes")

// CheckGit verifies that git is available in PATH.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}
