package request

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// TargetKind classifies what the URL points at.
type TargetKind int

const (
	TargetRoot TargetKind = iota
	TargetDirectory
	TargetFile
	TargetCommit
)

func (k TargetKind) String() string {
	switch k {
	case TargetRoot:
		return "root"
	case TargetDirectory:
		return "directory"
	case TargetFile:
		return "file"
	case TargetCommit:
		return "commit"
	}
	return fmt.Sprintf("TargetKind(%d)", int(k))
}

// Target is the subject of a browse request.
type Target struct {
	Kind TargetKind

	// Path is slash-separated and relative to the repository root.
	// Empty for TargetRoot and TargetCommit.
	Path string

	// Commit is the lower-case hash for TargetCommit.
	Commit string

	// Explicit is true when the target came from the command line rather
	// than from the working directory.
	Explicit bool
}

// Request is a normalized browse request.
type Request struct {
	Target Target

	// Ref is the branch, tag or commit the view is rendered at.
	Ref string

	// RefExplicit is true when Ref came from --ref.
	RefExplicit bool

	// DefaultRef is the repository's primary branch.
	DefaultRef string

	// RefIsTag selects the tag variant of the commit-log view.
	RefIsTag bool

	Line    uint
	Raw     bool
	Blame   bool
	Commits bool
}

// AtDefaultRef reports whether the request is rendered at the primary branch.
func (r Request) AtDefaultRef() bool {
	return r.Ref == r.DefaultRef
}

// Input holds the parsed command-line values.
type Input struct {
	Target  string
	Ref     string
	Line    uint
	Raw     bool
	Blame   bool
	Commits bool
}

// Context holds repository state supplied by the git collaborator.
type Context struct {
	// Branch is the checked-out branch, empty on a detached HEAD.
	Branch string

	// Head is the commit hash of HEAD.
	Head string

	// DefaultBranch is the primary branch; "master" when empty.
	DefaultBranch string

	// Root is the absolute work tree path, used to relativize absolute targets.
	Root string

	// Prefix is the working directory relative to Root, slash-separated,
	// empty at the repository root.
	Prefix string

	// FS is rooted at the work tree and used to classify path targets.
	FS fs.FS

	// IsTag reports whether ref names a tag. May be nil.
	IsTag func(ref string) bool
}

// DefaultBranchFallback is used when the repository has no detectable
// primary branch.
const DefaultBranchFallback = "master"

// ErrNoRef is returned when neither --ref, a branch nor HEAD is available.
var ErrNoRef = errors.New("cannot determine ref: no --ref given, no branch checked out and no HEAD commit")

// AmbiguousTargetError is returned when a target is neither a commit hash
// nor an existing path inside the repository.
type AmbiguousTargetError struct {
	Target string
	Reason string
}

func (e *AmbiguousTargetError) Error() string {
	return fmt.Sprintf("cannot resolve target %q: %s", e.Target, e.Reason)
}

var commitPattern = regexp.MustCompile(`^(?:[0-9a-fA-F]{7}|[0-9a-fA-F]{40})$`)

// IsCommitHash reports whether s is a 7 character abbreviated or a full
// 40 character commit hash. Other hex strings are looked up as paths.
func IsCommitHash(s string) bool {
	return commitPattern.MatchString(s)
}

// New builds a Request from command-line input and repository context.
// Flag combinations are not checked here.
func New(in Input, c Context) (Request, error) {
	target, err := classify(in.Target, c)
	if err != nil {
		return Request{}, err
	}

	req := Request{
		Target:      target,
		Ref:         in.Ref,
		RefExplicit: in.Ref != "",
		DefaultRef:  c.DefaultBranch,
		Line:        in.Line,
		Raw:         in.Raw,
		Blame:       in.Blame,
		Commits:     in.Commits,
	}
	if req.DefaultRef == "" {
		req.DefaultRef = DefaultBranchFallback
	}
	if req.Ref == "" {
		req.Ref = c.Branch
	}
	if req.Ref == "" {
		req.Ref = c.Head
	}
	if req.Ref == "" {
		return Request{}, ErrNoRef
	}
	if req.Commits && c.IsTag != nil {
		req.RefIsTag = c.IsTag(req.Ref)
	}

	return req, nil
}

func classify(raw string, c Context) (Target, error) {
	if raw == "" {
		prefix := cleanPrefix(c.Prefix)
		if prefix == "" {
			return Target{Kind: TargetRoot}, nil
		}
		return Target{Kind: TargetDirectory, Path: prefix}, nil
	}

	if IsCommitHash(raw) {
		return Target{Kind: TargetCommit, Commit: strings.ToLower(raw), Explicit: true}, nil
	}

	rel, err := repoRelative(raw, c)
	if err != nil {
		return Target{}, err
	}
	if rel == "" {
		return Target{Kind: TargetRoot, Explicit: true}, nil
	}

	if c.FS == nil {
		return Target{Kind: TargetFile, Path: rel, Explicit: true}, nil
	}
	info, err := fs.Stat(c.FS, rel)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Target{}, &AmbiguousTargetError{Target: raw, Reason: "not a commit hash and no such path in the repository"}
		}
		return Target{}, fmt.Errorf("stat %s: %w", rel, err)
	}
	if info.IsDir() {
		return Target{Kind: TargetDirectory, Path: rel, Explicit: true}, nil
	}
	return Target{Kind: TargetFile, Path: rel, Explicit: true}, nil
}

// repoRelative resolves raw against the working directory and returns a
// clean slash path relative to the repository root ("" for the root).
func repoRelative(raw string, c Context) (string, error) {
	var joined string
	if filepath.IsAbs(raw) {
		if c.Root == "" {
			return "", &AmbiguousTargetError{Target: raw, Reason: "absolute path without a known repository root"}
		}
		rel, err := filepath.Rel(c.Root, raw)
		if err != nil {
			return "", &AmbiguousTargetError{Target: raw, Reason: "path outside the repository"}
		}
		joined = path.Clean(filepath.ToSlash(rel))
	} else {
		joined = path.Join(cleanPrefix(c.Prefix), filepath.ToSlash(raw))
	}

	if joined == ".." || strings.HasPrefix(joined, "../") {
		return "", &AmbiguousTargetError{Target: raw, Reason: "path outside the repository"}
	}
	if joined == "." {
		return "", nil
	}
	return joined, nil
}

func cleanPrefix(p string) string {
	p = strings.Trim(filepath.ToSlash(p), "/")
	if p == "" {
		return ""
	}
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	return p
}
