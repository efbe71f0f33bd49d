package host

import (
	"fmt"
	"strings"
)

// View is the kind of page a URL points at.
type View int

const (
	ViewRoot View = iota
	ViewRootAtRef
	ViewDirectory
	ViewFile
	ViewCommit
	ViewCommitLog
	ViewCommitLogTag
	ViewRaw
	ViewBlame
)

func (v View) String() string {
	switch v {
	case ViewRoot:
		return "root"
	case ViewRootAtRef:
		return "root-at-ref"
	case ViewDirectory:
		return "directory"
	case ViewFile:
		return "file"
	case ViewCommit:
		return "commit"
	case ViewCommitLog:
		return "commit-log"
	case ViewCommitLogTag:
		return "commit-log-tag"
	case ViewRaw:
		return "raw"
	case ViewBlame:
		return "blame"
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// Template is the URL shape of one view, relative to the repository base URL.
// Path may contain the placeholders {ref}, {path} and {sha}.
type Template struct {
	Path string

	// RefQuery appends at={ref} when the ref differs from the default branch.
	RefQuery bool

	// Flag is a bare query parameter appended after at=, e.g. "raw".
	Flag string
}

// UsesRef reports whether the ref is embedded in the path.
func (t Template) UsesRef() bool {
	return strings.Contains(t.Path, "{ref}")
}

// Feature is a request option a host may or may not offer.
type Feature uint8

const (
	FeatureLine Feature = 1 << iota
	FeatureRaw
	FeatureBlame
	FeatureCommits
)

// AllFeatures is the full feature set.
const AllFeatures = FeatureLine | FeatureRaw | FeatureBlame | FeatureCommits

// Flag returns the command-line flag that requests the feature.
func (f Feature) Flag() string {
	switch f {
	case FeatureLine:
		return "--line"
	case FeatureRaw:
		return "--raw"
	case FeatureBlame:
		return "--blame"
	case FeatureCommits:
		return "--commits"
	}
	return fmt.Sprintf("Feature(%d)", uint8(f))
}

// Profile describes how a host lays out its web URLs.
type Profile struct {
	Kind Kind

	Root         Template
	RootAtRef    Template
	Directory    Template
	File         Template
	Commit       Template
	CommitLog    Template
	CommitLogTag Template
	Raw          Template
	Blame        Template

	// LineFormat renders the URL fragment for a line number, e.g. "#L%d".
	LineFormat string

	Features Feature
}

// Supports reports whether every feature in f is offered.
func (p Profile) Supports(f Feature) bool {
	return p.Features&f == f
}

// Template returns the template for v.
func (p Profile) Template(v View) Template {
	switch v {
	case ViewRoot:
		return p.Root
	case ViewRootAtRef:
		return p.RootAtRef
	case ViewDirectory:
		return p.Directory
	case ViewFile:
		return p.File
	case ViewCommit:
		return p.Commit
	case ViewCommitLog:
		return p.CommitLog
	case ViewCommitLogTag:
		return p.CommitLogTag
	case ViewRaw:
		return p.Raw
	case ViewBlame:
		return p.Blame
	}
	return Template{}
}

// Line renders the fragment for line n.
func (p Profile) Line(n uint) string {
	return fmt.Sprintf(p.LineFormat, n)
}
