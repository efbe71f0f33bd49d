// Package urlbuild renders a validated browse request into a URL using the
// host profile templates.
package urlbuild

import (
	"net/url"
	"strings"

	"github.com/raphi011/git-browse/internal/host"
	"github.com/raphi011/git-browse/internal/remote"
	"github.com/raphi011/git-browse/internal/request"
)

// SelectView picks the template row for r. Validation must have run first.
func SelectView(r request.Request) host.View {
	switch {
	case r.Commits && r.RefIsTag:
		return host.ViewCommitLogTag
	case r.Commits:
		return host.ViewCommitLog
	case r.Target.Kind == request.TargetCommit:
		return host.ViewCommit
	case r.Raw:
		return host.ViewRaw
	case r.Blame:
		return host.ViewBlame
	case r.Target.Kind == request.TargetFile:
		return host.ViewFile
	case r.Target.Kind == request.TargetDirectory:
		return host.ViewDirectory
	case r.RefExplicit || !r.AtDefaultRef():
		return host.ViewRootAtRef
	}
	return host.ViewRoot
}

// Build returns the URL for r on the repository described by id.
func Build(id remote.Identity, p host.Profile, r request.Request) string {
	tpl := p.Template(SelectView(r))

	var b strings.Builder
	b.WriteString(id.BaseURL())
	b.WriteString(expand(tpl.Path, r))

	var query []string
	if tpl.RefQuery && !r.AtDefaultRef() {
		query = append(query, "at="+url.QueryEscape(r.Ref))
	}
	if tpl.Flag != "" {
		query = append(query, tpl.Flag)
	}
	if len(query) > 0 {
		b.WriteByte('?')
		b.WriteString(strings.Join(query, "&"))
	}

	if r.Line > 0 {
		b.WriteString(p.Line(r.Line))
	}
	return b.String()
}

func expand(tpl string, r request.Request) string {
	if tpl == "" {
		return ""
	}
	return strings.NewReplacer(
		"{ref}", escapePath(r.Ref),
		"{path}", escapePath(r.Target.Path),
		"{sha}", r.Target.Commit,
	).Replace(tpl)
}

// escapePath escapes each segment and keeps the separators.
func escapePath(p string) string {
	segments := strings.Split(p, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
