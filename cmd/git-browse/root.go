package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/git-browse/internal/browser"
	"github.com/raphi011/git-browse/internal/config"
	"github.com/raphi011/git-browse/internal/git"
	"github.com/raphi011/git-browse/internal/log"
	"github.com/raphi011/git-browse/internal/output"
	"github.com/raphi011/git-browse/internal/ui/prompt"
	"github.com/raphi011/git-browse/internal/ui/styles"
)

// deps holds everything the commands take from the process environment.
type deps struct {
	getenv  func(string) string
	workDir string

	// interactive is true when stdin and stderr are terminals.
	interactive bool

	openRepo func(ctx context.Context, backend git.Backend, dir string) (git.Repository, error)
	open     func(ctx context.Context, url string) error
	copy     func(url string) error
	pick     func(title string, options []prompt.Option, initial int) (prompt.SelectResult, error)
}

func realDeps(workDir string) *deps {
	return &deps{
		getenv:      os.Getenv,
		workDir:     workDir,
		interactive: isTerminal(os.Stdin) && isTerminal(os.Stderr),
		openRepo:    git.Open,
		open:        browser.New().Open,
		copy:        browser.Copy,
		pick:        prompt.Select,
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// loadConfig reads the config file named by the environment.
func (d *deps) loadConfig() (config.Config, error) {
	path, err := config.Path(d.getenv)
	if err != nil {
		return config.Default(), fmt.Errorf("failed to locate config file: %w", err)
	}
	return config.Load(path, d.getenv)
}

func newRootCmd(d *deps) *cobra.Command {
	var (
		verbose bool
		quiet   bool
		flags   browseFlags
	)

	cmd := &cobra.Command{
		Use:   "git-browse [target]",
		Short: "Open the web page of a file, directory or commit on its git host",
		Long: `git-browse opens the hosting service's web page for the current repository.

The target is a path (relative to the working directory) or a commit hash.
Without a target the current directory is shown. Supported hosts are GitHub,
GitLab, Bitbucket Cloud, Stash (Bitbucket Server) and Gitorious; self-hosted
instances are declared in ~/.config/git-browse/config.toml.

A target named like a subcommand (config, help) must be written as ./config
or ./help.`,
		Example: `  git-browse                         # repository or current directory
  git-browse main.go --line=42       # file at the current branch, line 42
  git-browse a78cd8e                 # commit
  git-browse --commits --ref=v1.2.0  # history of a tag
  git-browse README.md --blame       # blame view
  git-browse --url-only src/         # print instead of opening`,
		Args:                       usageArgs(cobra.MaximumNArgs(1)),
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return usageErrorf("--verbose and --quiet are mutually exclusive")
			}
			ctx := log.WithLogger(cmd.Context(), log.New(cmd.ErrOrStderr(), verbose, quiet))
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())
			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("line") && flags.line == 0 {
				return usageErrorf("--line must be a positive line number")
			}
			if flags.root != "" {
				if err := validateRootFlag(flags.root); err != nil {
					return err
				}
			}
			var target string
			if len(args) == 1 {
				target = args[0]
			}
			return runBrowse(cmd.Context(), d, target, flags)
		},
	}

	cmd.Flags().StringVar(&flags.ref, "ref", "", "Branch, tag or commit to browse at (default: current branch)")
	cmd.Flags().UintVar(&flags.line, "line", 0, "Highlight this line of the target file")
	cmd.Flags().BoolVar(&flags.commits, "commits", false, "Show the commit history of the ref")
	cmd.Flags().BoolVar(&flags.raw, "raw", false, "Show the raw file")
	cmd.Flags().BoolVar(&flags.blame, "blame", false, "Show blame for the file")
	cmd.Flags().BoolVar(&flags.urlOnly, "url-only", false, "Print the URL instead of opening a browser")
	cmd.Flags().BoolVar(&flags.copy, "copy", false, "Copy the URL to the clipboard")
	cmd.Flags().StringVar(&flags.remote, "remote", "", "Remote to browse (default: config remote or origin)")
	cmd.Flags().StringVar(&flags.root, "root", "", "Override the host web root, e.g. https://code.corp/gitlab")
	cmd.Flags().BoolVarP(&flags.interactive, "interactive", "i", false, "Pick the remote from a list")

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	// a target named "completion" is a path, not a shell completion request
	cmd.CompletionOptions.DisableDefaultCmd = true

	// --version
	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(newConfigCmd(d))

	return cmd
}

// Execute runs the command line and returns the process exit status.
func Execute() int {
	// Cancel git subprocesses and the browser launch on Ctrl-C
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	stderr := styles.Stderr()

	workDir, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(stderr, styles.ErrorLine(fmt.Errorf("failed to get working directory: %w", err)))
		return 1
	}

	err = newRootCmd(realDeps(workDir)).ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errCancelled) {
		fmt.Fprintln(stderr, styles.ErrorLine(err))
		var ue *usageError
		if errors.As(err, &ue) {
			fmt.Fprintln(stderr, "Run 'git-browse -h' for help")
		}
	}
	return exitCode(err)
}
