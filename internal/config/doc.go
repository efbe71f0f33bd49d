// Package config handles loading and validation of git-browse configuration.
//
// Configuration is read from ~/.config/git-browse/config.toml (or the file
// named by GIT_BROWSE_CONFIG) with environment variable overrides.
//
// # Configuration Sources (highest priority first)
//
//   - Command-line flags (applied by the caller)
//   - GIT_BROWSE_REMOTE, GIT_BROWSE_DEFAULT_BRANCH, GIT_BROWSE_BACKEND
//   - GIT_BROWSE_<KIND>_HOSTNAME with optional GIT_BROWSE_<KIND>_URL_ROOT,
//     e.g. GIT_BROWSE_STASH_HOSTNAME=stash.mycompany.com
//   - Config file settings
//   - Default values
//
// # Self-hosted instances
//
// Hosts whose names do not reveal their kind are declared in [hosts] tables:
//
//	[hosts."code.mycompany.com"]
//	kind = "stash"
//	root = "https://code.mycompany.com/bitbucket"
//
// [Config.Domains] turns them into the [host.Domains] value the URL engine
// consumes.
package config
