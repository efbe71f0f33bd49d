package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/git-browse/internal/config"
	"github.com/raphi011/git-browse/internal/log"
	"github.com/raphi011/git-browse/internal/output"
)

func newConfigCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		Long: `Manage git-browse configuration.

Config file: ~/.config/git-browse/config.toml (override with GIT_BROWSE_CONFIG)`,
		Example: `  git-browse config init      # Create default config
  git-browse config init -s   # Print default config to stdout
  git-browse config show      # Show effective config`,
		Args: usageArgs(cobra.NoArgs),
	}

	cmd.AddCommand(newConfigInitCmd(d))
	cmd.AddCommand(newConfigShowCmd(d))

	return cmd
}

func newConfigInitCmd(d *deps) *cobra.Command {
	var (
		force  bool
		stdout bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if stdout {
				output.FromContext(ctx).Printf("%s", config.DefaultFile())
				return nil
			}

			path, err := config.Path(d.getenv)
			if err != nil {
				return fmt.Errorf("failed to locate config file: %w", err)
			}
			if err := config.Init(path, force); err != nil {
				return err
			}
			log.FromContext(ctx).Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")

	return cmd
}

func newConfigShowCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Long: `Show the effective configuration as TOML.

The output combines the config file, environment overrides and defaults.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := d.loadConfig()
			if err != nil {
				return err
			}
			return cfg.Write(output.FromContext(cmd.Context()).Writer())
		},
	}
}
