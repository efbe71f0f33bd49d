package remote

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	giturls "github.com/whilp/git-urls"

	"github.com/raphi011/git-browse/internal/host"
)

// Identity is the hosting-service view of a git remote.
type Identity struct {
	Kind host.Kind

	// Host is the lower-case host name without port.
	Host string

	// Root is the web root without trailing slash, e.g. "https://github.com".
	Root string

	// Path is the repository path below Root: "user/repo" for most hosts,
	// "projects/PROJ/repos/repo" or "users/name/repos/repo" for Stash.
	Path string
}

// BaseURL returns the repository's web URL.
func (id Identity) BaseURL() string {
	return id.Root + "/" + id.Path
}

// UnrecognizedHostError is returned when a remote URL cannot be mapped to a
// supported hosting service.
type UnrecognizedHostError struct {
	Remote string
	Host   string
	Reason string
}

func (e *UnrecognizedHostError) Error() string {
	if e.Host != "" {
		return fmt.Sprintf("unrecognized git host %q in remote %q: %s", e.Host, e.Remote, e.Reason)
	}
	return fmt.Sprintf("unrecognized git remote %q: %s", e.Remote, e.Reason)
}

// scp-like remotes: git@host:path or user@host/path.
var (
	scpColon = regexp.MustCompile(`^(?:([^@/:\s]+)@)?([^@/:\s]+):(.+)$`)
	scpSlash = regexp.MustCompile(`^([^@/:\s]+)@([^@/:\s]+)/(.+)$`)
)

// Parse turns a remote URL into an Identity. Domains take priority over the
// built-in host patterns.
func Parse(remoteURL string, domains host.Domains) (Identity, error) {
	raw := strings.TrimSpace(remoteURL)
	if raw == "" {
		return Identity{}, &UnrecognizedHostError{Remote: remoteURL, Reason: "empty remote URL"}
	}

	u, err := parseURL(raw)
	if err != nil {
		return Identity{}, &UnrecognizedHostError{Remote: remoteURL, Reason: err.Error()}
	}

	hostname := strings.ToLower(u.Hostname())
	if hostname == "" {
		return Identity{}, &UnrecognizedHostError{Remote: remoteURL, Reason: "no host name"}
	}

	kind, root, ok := classify(hostname, domains)
	if !ok {
		return Identity{}, &UnrecognizedHostError{Remote: remoteURL, Host: hostname, Reason: "not a supported hosting service"}
	}

	segments := splitPath(u.Path)

	id := Identity{Kind: kind, Host: hostname}
	if kind == host.Stash {
		context, path, err := stashPath(segments)
		if err != nil {
			return Identity{}, &UnrecognizedHostError{Remote: remoteURL, Host: hostname, Reason: err.Error()}
		}
		if root == "" {
			root = "https://" + hostname + context
		}
		id.Path = path
	} else {
		if len(segments) < 2 {
			return Identity{}, &UnrecognizedHostError{Remote: remoteURL, Host: hostname, Reason: "expected owner/repository path"}
		}
		if root == "" {
			root = "https://" + hostname
		}
		id.Path = strings.Join(segments, "/")
	}
	id.Root = strings.TrimRight(root, "/")

	return id, nil
}

// parseURL normalizes scp-like forms into ssh:// URLs before handing them to
// giturls, which rejects some valid paths (~user) in its own scp parser.
func parseURL(raw string) (*url.URL, error) {
	if !strings.Contains(raw, "://") {
		if m := scpColon.FindStringSubmatch(raw); m != nil {
			raw = sshURL(m[1], m[2], m[3])
		} else if m := scpSlash.FindStringSubmatch(raw); m != nil {
			raw = sshURL(m[1], m[2], m[3])
		}
	}

	u, err := giturls.Parse(raw)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "file" {
		return nil, fmt.Errorf("local path is not a hosted remote")
	}
	return u, nil
}

func sshURL(user, hostname, path string) string {
	if user != "" {
		hostname = user + "@" + hostname
	}
	return "ssh://" + hostname + "/" + strings.TrimLeft(path, "/")
}

// splitPath drops empty segments and the .git suffix.
func splitPath(p string) []string {
	p = strings.TrimSuffix(strings.Trim(p, "/"), ".git")
	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// wellKnown are the hosted services. Subdomains such as ssh.github.com or
// altssh.bitbucket.org are SSH endpoints of the same site.
var wellKnown = []struct {
	domain string
	kind   host.Kind
}{
	{"github.com", host.GitHub},
	{"gitlab.com", host.GitLab},
	{"gitorious.org", host.Gitorious},
	{"bitbucket.org", host.Bitbucket},
}

// classify picks the host kind. It returns the override root when the host
// is configured, the site root for well-known services, or "" to use the
// default https root.
func classify(hostname string, domains host.Domains) (host.Kind, string, bool) {
	if o, ok := domains.Lookup(hostname); ok {
		return o.Kind, o.Root, true
	}

	for _, d := range wellKnown {
		if hostname == d.domain || strings.HasSuffix(hostname, "."+d.domain) {
			return d.kind, "https://" + d.domain, true
		}
	}

	switch {
	case strings.Contains(hostname, "github"):
		return host.GitHub, "", true
	case strings.Contains(hostname, "gitlab"):
		return host.GitLab, "", true
	case strings.Contains(hostname, "gitorious"):
		return host.Gitorious, "", true
	case strings.Contains(hostname, "stash"), strings.Contains(hostname, "bitbucket"):
		// Bitbucket Server was called Stash; only bitbucket.org is the cloud service.
		return host.Stash, "", true
	}

	return 0, "", false
}

// stashPath maps [context...] [scm] PROJ repo to the web path and returns
// the context path that precedes "scm" on HTTP remotes.
func stashPath(segments []string) (string, string, error) {
	var context string
	for i, s := range segments {
		if s == "scm" {
			if i > 0 {
				context = "/" + strings.Join(segments[:i], "/")
			}
			segments = segments[i+1:]
			break
		}
	}

	if len(segments) != 2 {
		return "", "", fmt.Errorf("expected PROJECT/repository or ~user/repository path")
	}

	owner, repo := segments[0], segments[1]
	if user, ok := strings.CutPrefix(owner, "~"); ok {
		if user == "" {
			return "", "", fmt.Errorf("empty user name")
		}
		return context, "users/" + user + "/repos/" + repo, nil
	}
	return context, "projects/" + strings.ToUpper(owner) + "/repos/" + repo, nil
}
