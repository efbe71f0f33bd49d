// Package cmd runs external programs with context cancellation and
// verbose tracing through the context logger.
//
// Stderr is captured and used as the error message when a command fails,
// so a failing git invocation surfaces git's own explanation:
//
//	out, err := cmd.OutputContext(ctx, dir, "git", "remote", "get-url", "origin")
//	if err != nil {
//	    // err is e.g. "error: No such remote 'origin'"
//	}
package cmd
