package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/git-browse/internal/host"
)

func envMap(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"), envMap(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Remote != "origin" || cfg.Backend != "exec" || cfg.DefaultBranch != "" {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
remote = "upstream"
default_branch = "main"
backend = "go-git"

[hosts."code.corp.example"]
kind = "gitlab"
root = "https://code.corp.example/gitlab/"

[hosts."Stash.MyCompany.com"]
kind = "bitbucket-server"
`)
	cfg, err := Load(path, envMap(nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Remote != "upstream" || cfg.DefaultBranch != "main" || cfg.Backend != "go-git" {
		t.Errorf("Load() = %+v", cfg)
	}

	d := cfg.Domains()
	if got, ok := d.Lookup("code.corp.example"); !ok || got.Kind != host.GitLab || got.Root != "https://code.corp.example/gitlab" {
		t.Errorf("Domains()[code.corp.example] = %+v, %v", got, ok)
	}
	if got, ok := d.Lookup("stash.mycompany.com"); !ok || got.Kind != host.Stash || got.Root != "" {
		t.Errorf("Domains()[stash.mycompany.com] = %+v, %v", got, ok)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `remote = "upstream"`)
	cfg, err := Load(path, envMap(map[string]string{
		"GIT_BROWSE_REMOTE":          "fork",
		"GIT_BROWSE_DEFAULT_BRANCH":  "trunk",
		"GIT_BROWSE_BACKEND":         "go-git",
		"GIT_BROWSE_STASH_HOSTNAME":  "Stash.MyCompany.com",
		"GIT_BROWSE_STASH_URL_ROOT":  "https://stash.mycompany.com",
		"GIT_BROWSE_GITLAB_HOSTNAME": "code.internal",
	}))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Remote != "fork" || cfg.DefaultBranch != "trunk" || cfg.Backend != "go-git" {
		t.Errorf("Load() = %+v", cfg)
	}

	d := cfg.Domains()
	if got, ok := d.Lookup("stash.mycompany.com"); !ok || got.Kind != host.Stash || got.Root != "https://stash.mycompany.com" {
		t.Errorf("stash override = %+v, %v", got, ok)
	}
	if got, ok := d.Lookup("code.internal"); !ok || got.Kind != host.GitLab {
		t.Errorf("gitlab override = %+v, %v", got, ok)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "syntax error",
			content: `remote = `,
			wantErr: "failed to parse config file",
		},
		{
			name:    "unknown key",
			content: "remote = \"origin\"\nworktree_dir = \"~/wt\"\n",
			wantErr: "unknown keys in config file",
		},
		{
			name:    "bad backend",
			content: `backend = "libgit"`,
			wantErr: `invalid backend "libgit": must be "exec" or "go-git"`,
		},
		{
			name:    "bad backend from env",
			env:     map[string]string{"GIT_BROWSE_BACKEND": "shell"},
			wantErr: `invalid backend "shell"`,
		},
		{
			name:    "typo in kind suggests",
			content: "[hosts.\"code.corp\"]\nkind = \"githb\"\n",
			wantErr: `(did you mean "github"?)`,
		},
		{
			name:    "missing kind",
			content: "[hosts.\"code.corp\"]\nroot = \"https://code.corp\"\n",
			wantErr: "kind is required",
		},
		{
			name:    "root without scheme",
			content: "[hosts.\"code.corp\"]\nkind = \"stash\"\nroot = \"code.corp\"\n",
			wantErr: "must start with https:// or http://",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeConfig(t, tt.content)
			_, err := Load(path, envMap(tt.env))
			if err == nil {
				t.Fatalf("Load() = nil error, want %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %q, want to contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Parallel()

	got, err := Path(envMap(map[string]string{"GIT_BROWSE_CONFIG": "/etc/git-browse.toml"}))
	if err != nil || got != "/etc/git-browse.toml" {
		t.Errorf("Path() = %q, %v, want /etc/git-browse.toml", got, err)
	}

	got, err = Path(envMap(nil))
	if err != nil {
		t.Fatalf("Path() error = %v", err)
	}
	if !strings.HasSuffix(got, filepath.Join(".config", "git-browse", "config.toml")) {
		t.Errorf("Path() = %q, want ~/.config/git-browse/config.toml", got)
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := Init(path, false); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	cfg, err := Load(path, envMap(nil))
	if err != nil {
		t.Fatalf("Load(default file) error = %v", err)
	}
	if cfg.Remote != "origin" || cfg.Backend != "exec" {
		t.Errorf("default file decodes to %+v", cfg)
	}

	if err := Init(path, false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second Init() error = %v, want already exists", err)
	}
	if err := Init(path, true); err != nil {
		t.Errorf("Init(force) error = %v", err)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Remote:        "origin",
		Backend:       "exec",
		DefaultBranch: "main",
		Hosts:         map[string]HostConfig{"stash.mycompany.com": {Kind: "stash", Root: "https://stash.mycompany.com"}},
	}
	var buf bytes.Buffer
	if err := cfg.Write(&buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	var got Config
	if _, err := toml.Decode(buf.String(), &got); err != nil {
		t.Fatalf("decode written config: %v\n%s", err, buf.String())
	}
	if got.DefaultBranch != "main" || got.Hosts["stash.mycompany.com"].Kind != "stash" {
		t.Errorf("round trip = %+v", got)
	}
}

func TestDomains_Empty(t *testing.T) {
	t.Parallel()
	if d := Default().Domains(); d != nil {
		t.Errorf("Default().Domains() = %v, want nil", d)
	}
}
