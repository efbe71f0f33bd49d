// Package git reads the repository state git-browse needs: remotes, the
// checked-out branch, HEAD, the primary branch, tags and the work tree
// location.
//
// Two [Repository] backends exist. [BackendExec] shells out to the git CLI
// and is the default because it respects the user's configuration (url
// insteadOf rewrites, includes, worktrees). [BackendGoGit] uses go-git and
// works without a git binary.
//
// # Working directory prefix
//
// When git-browse runs as a git alias ("git browse"), git changes to the
// top-level directory before running the command and passes the original
// subdirectory in GIT_PREFIX. [WorkingPrefix] honours that so relative
// targets still resolve against the directory the user typed them in.
package git
