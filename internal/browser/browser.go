// Package browser opens URLs in the user's web browser and copies them to
// the clipboard.
package browser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"

	"github.com/raphi011/git-browse/internal/cmd"
)

// Launcher opens URLs. The zero value is not usable; use [New].
type Launcher struct {
	getenv  func(string) string
	isWSL   func() bool
	openURL func(string) error
	run     func(ctx context.Context, name string, args ...string) error
}

// New returns a Launcher backed by the real environment.
func New() *Launcher {
	// browser helpers print to the terminal on failure; errors are returned instead
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	return &Launcher{
		getenv:  os.Getenv,
		isWSL:   isWSL,
		openURL: browser.OpenURL,
		run: func(ctx context.Context, name string, args ...string) error {
			return cmd.RunContext(ctx, "", name, args...)
		},
	}
}

// Open opens u. $BROWSER takes priority, then wslview on WSL, then the
// platform default (open, xdg-open or the Windows URL handler).
func (l *Launcher) Open(ctx context.Context, u string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if b := strings.TrimSpace(l.getenv("BROWSER")); b != "" {
		fields := strings.Fields(b)
		if err := l.run(ctx, fields[0], append(fields[1:], u)...); err != nil {
			return fmt.Errorf("failed to open browser %s: %w", fields[0], err)
		}
		return nil
	}

	if l.isWSL() {
		if err := l.run(ctx, "wslview", u); err != nil {
			return fmt.Errorf("failed to open browser via wslview: %w", err)
		}
		return nil
	}

	if err := l.openURL(u); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}

// Copy puts u on the system clipboard.
func Copy(u string) error {
	if err := clipboard.WriteAll(u); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}

func isWSL() bool {
	_, err := os.Stat("/proc/sys/fs/binfmt_misc/WSLInterop")
	return err == nil
}
