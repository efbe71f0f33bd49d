package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-browse/internal/feature"
	"github.com/raphi011/git-browse/internal/remote"
	"github.com/raphi011/git-browse/internal/request"
)

// Exit statuses. 64 is EX_USAGE from sysexits.h.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 64
)

// errCancelled is returned when the user dismisses the remote picker.
var errCancelled = errors.New("cancelled")

// usageError marks bad command-line input.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}

// usageArgs wraps a positional-argument validator so its errors map to
// the usage exit status.
func usageArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func validateRootFlag(root string) error {
	if !strings.HasPrefix(root, "https://") && !strings.HasPrefix(root, "http://") {
		return usageErrorf("invalid --root %q: must start with https:// or http://", root)
	}
	return nil
}

// exitCode maps an error to the process exit status. Errors that describe
// what the user asked for, rather than the environment, are usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var (
		ue *usageError
		uh *remote.UnrecognizedHostError
		uc *feature.UnsupportedCombinationError
		at *request.AmbiguousTargetError
	)
	switch {
	case errors.As(err, &ue), errors.As(err, &uh), errors.As(err, &uc), errors.As(err, &at):
		return exitUsage
	}
	return exitFailure
}
