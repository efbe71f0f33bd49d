package host

import (
	"fmt"
	"strings"
)

// Kind identifies a supported git hosting platform family.
type Kind int

const (
	Stash Kind = iota + 1
	GitHub
	GitLab
	Gitorious
	Bitbucket
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{Stash, GitHub, GitLab, Gitorious, Bitbucket}

// String returns the display name ("Stash", "GitHub", ...).
func (k Kind) String() string {
	switch k {
	case Stash:
		return "Stash"
	case GitHub:
		return "GitHub"
	case GitLab:
		return "GitLab"
	case Gitorious:
		return "Gitorious"
	case Bitbucket:
		return "Bitbucket"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Name returns the lower-case identifier used in config files.
func (k Kind) Name() string {
	return strings.ToLower(k.String())
}

// KindNames returns the config identifiers of all kinds.
func KindNames() []string {
	names := make([]string, len(Kinds))
	for i, k := range Kinds {
		names[i] = k.Name()
	}
	return names
}

// ParseKind maps a config identifier to a Kind.
// "bitbucket-server" is accepted as an alias for stash.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stash", "bitbucket-server":
		return Stash, nil
	case "github":
		return GitHub, nil
	case "gitlab":
		return GitLab, nil
	case "gitorious":
		return Gitorious, nil
	case "bitbucket":
		return Bitbucket, nil
	}
	return 0, fmt.Errorf("unknown host kind %q", name)
}

// Override pins a host name to a kind, optionally with a custom web root
// such as "https://stash.mycompany.com" or "https://code.corp/gitlab".
type Override struct {
	Kind Kind
	Root string
}

// Domains maps lower-case host names to overrides for self-hosted instances.
type Domains map[string]Override

// Lookup returns the override for hostname, ignoring case.
func (d Domains) Lookup(hostname string) (Override, bool) {
	if len(d) == 0 {
		return Override{}, false
	}
	o, ok := d[strings.ToLower(hostname)]
	return o, ok
}
