package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/git-browse/internal/host"
)

// HostConfig declares the kind and web root of a self-hosted instance.
type HostConfig struct {
	Kind string `toml:"kind"`
	Root string `toml:"root,omitempty"`
}

// Config holds the git-browse configuration.
type Config struct {
	// DefaultBranch overrides the primary branch detected from the remote.
	DefaultBranch string `toml:"default_branch,omitempty"`

	// Remote is the remote whose URL is browsed.
	Remote string `toml:"remote"`

	// Backend is "exec" or "go-git".
	Backend string `toml:"backend"`

	// Hosts maps host names to self-hosted instance settings.
	Hosts map[string]HostConfig `toml:"hosts,omitempty"`
}

// DefaultRemote is used when neither config nor flags name a remote.
const DefaultRemote = "origin"

// ValidBackends lists the accepted backend values.
var ValidBackends = []string{"exec", "go-git"}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Remote:  DefaultRemote,
		Backend: "exec",
	}
}

// Path returns the config file location. GIT_BROWSE_CONFIG wins over the
// default ~/.config/git-browse/config.toml.
func Path(getenv func(string) string) (string, error) {
	if p := getenv("GIT_BROWSE_CONFIG"); p != "" {
		return expandPath(p)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "git-browse", "config.toml"), nil
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// Load reads the config file at path and applies environment overrides
// from getenv. A missing file is not an error.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	default:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Default(), fmt.Errorf("unknown keys in config file %s: %s", path, strings.Join(keys, ", "))
		}
	}

	applyEnv(&cfg, getenv)

	if cfg.Remote == "" {
		cfg.Remote = DefaultRemote
	}
	if cfg.Backend == "" {
		cfg.Backend = "exec"
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// applyEnv layers GIT_BROWSE_* variables over cfg.
func applyEnv(cfg *Config, getenv func(string) string) {
	if getenv == nil {
		return
	}
	if v := getenv("GIT_BROWSE_REMOTE"); v != "" {
		cfg.Remote = v
	}
	if v := getenv("GIT_BROWSE_DEFAULT_BRANCH"); v != "" {
		cfg.DefaultBranch = v
	}
	if v := getenv("GIT_BROWSE_BACKEND"); v != "" {
		cfg.Backend = v
	}

	for _, k := range host.Kinds {
		prefix := "GIT_BROWSE_" + strings.ToUpper(k.Name())
		hostname := strings.ToLower(strings.TrimSpace(getenv(prefix + "_HOSTNAME")))
		if hostname == "" {
			continue
		}
		if cfg.Hosts == nil {
			cfg.Hosts = map[string]HostConfig{}
		}
		cfg.Hosts[hostname] = HostConfig{Kind: k.Name(), Root: getenv(prefix + "_URL_ROOT")}
	}
}

// Validate checks enum fields and host entries.
func (c Config) Validate() error {
	if err := validateEnum(c.Backend, "backend", ValidBackends); err != nil {
		return err
	}
	for _, name := range c.hostNames() {
		h := c.Hosts[name]
		if h.Kind == "" {
			return fmt.Errorf("hosts.%q: kind is required (must be %s)", name, formatOptions(host.KindNames()))
		}
		if _, err := host.ParseKind(h.Kind); err != nil {
			if err := validateEnum(strings.ToLower(h.Kind), fmt.Sprintf("kind for host %q", name), host.KindNames()); err != nil {
				return err
			}
		}
		if err := validateRoot(h.Root, fmt.Sprintf("root for host %q", name)); err != nil {
			return err
		}
	}
	return nil
}

// Domains converts the host table into the engine's override map.
// Validate must have succeeded.
func (c Config) Domains() host.Domains {
	if len(c.Hosts) == 0 {
		return nil
	}
	d := make(host.Domains, len(c.Hosts))
	for name, h := range c.Hosts {
		k, err := host.ParseKind(h.Kind)
		if err != nil {
			continue
		}
		d[strings.ToLower(name)] = host.Override{Kind: k, Root: strings.TrimRight(h.Root, "/")}
	}
	return d
}

func (c Config) hostNames() []string {
	names := make([]string, 0, len(c.Hosts))
	for name := range c.Hosts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Write encodes the effective configuration as TOML.
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

const defaultConfig = `# git-browse configuration

# Remote whose URL is opened (overridden by --remote and GIT_BROWSE_REMOTE)
remote = "origin"

# Primary branch. Views on this branch omit the ref where the host allows it.
# When unset it is read from refs/remotes/<remote>/HEAD, then a local
# master or main branch, then "master".
# default_branch = "main"

# How repository state is read: "exec" runs the git CLI, "go-git" reads the
# repository directly and needs no git binary.
backend = "exec"

# Self-hosted instances whose host name does not contain the kind.
# kind is one of "stash", "github", "gitlab", "gitorious" or "bitbucket".
# root defaults to https://<host>.
#
# [hosts."stash.mycompany.com"]
# kind = "stash"
# root = "https://stash.mycompany.com"
#
# [hosts."code.corp.example"]
# kind = "gitlab"
# root = "https://code.corp.example/gitlab"
`

// DefaultFile returns the commented config written by Init.
func DefaultFile() string {
	return defaultConfig
}

// Init writes a commented default config file to path.
// If force is true, an existing file is overwritten.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfig), 0o644)
}
