// Package feature checks a browse request against what a host can render.
//
// All rules live in this file so the accepted combinations can be audited
// in one place:
//
//   - features the host does not offer (blame on Stash)
//   - flag pairs no host accepts (--line/--raw, --raw/--blame, --line/--commits,
//     --raw/--commits, --blame/--commits, --line with a commit target)
//   - target requirements (--line, --raw and --blame need a file, --commits
//     takes no explicit target)
package feature

import (
	"fmt"
	"strings"

	"github.com/raphi011/git-browse/internal/host"
	"github.com/raphi011/git-browse/internal/request"
)

// commitTarget names a commit-hash target in error messages.
const commitTarget = "a commit target"

// UnsupportedCombinationError reports a request the host cannot render.
type UnsupportedCombinationError struct {
	Host  host.Kind
	Flags []string

	// Reason replaces the default message when set.
	Reason string
}

func (e *UnsupportedCombinationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s %s", strings.Join(e.Flags, " "), e.Reason)
	}
	if len(e.Flags) == 1 {
		return fmt.Sprintf("%s is not supported by %s", e.Flags[0], e.Host)
	}
	return fmt.Sprintf("%s cannot be combined with %s on %s", e.Flags[0], strings.Join(e.Flags[1:], ", "), e.Host)
}

type pair struct {
	a, b string
	set  func(request.Request) bool
}

var forbiddenPairs = []pair{
	{"--line", "--raw", func(r request.Request) bool { return r.Line > 0 && r.Raw }},
	{"--raw", "--blame", func(r request.Request) bool { return r.Raw && r.Blame }},
	{"--line", "--commits", func(r request.Request) bool { return r.Line > 0 && r.Commits }},
	{"--raw", "--commits", func(r request.Request) bool { return r.Raw && r.Commits }},
	{"--blame", "--commits", func(r request.Request) bool { return r.Blame && r.Commits }},
	{"--line", commitTarget, func(r request.Request) bool { return r.Line > 0 && r.Target.Kind == request.TargetCommit }},
}

// Requested returns the features a request asks for.
func Requested(r request.Request) host.Feature {
	var f host.Feature
	if r.Line > 0 {
		f |= host.FeatureLine
	}
	if r.Raw {
		f |= host.FeatureRaw
	}
	if r.Blame {
		f |= host.FeatureBlame
	}
	if r.Commits {
		f |= host.FeatureCommits
	}
	return f
}

// Validate returns an *UnsupportedCombinationError if p cannot render r.
func Validate(r request.Request, p host.Profile) error {
	requested := Requested(r)
	for _, f := range []host.Feature{host.FeatureBlame, host.FeatureRaw, host.FeatureLine, host.FeatureCommits} {
		if requested&f != 0 && !p.Supports(f) {
			return &UnsupportedCombinationError{Host: p.Kind, Flags: []string{f.Flag()}}
		}
	}

	for _, fp := range forbiddenPairs {
		if fp.set(r) {
			return &UnsupportedCombinationError{Host: p.Kind, Flags: []string{fp.a, fp.b}}
		}
	}

	for _, f := range []host.Feature{host.FeatureRaw, host.FeatureBlame, host.FeatureLine} {
		if requested&f != 0 && r.Target.Kind != request.TargetFile {
			return &UnsupportedCombinationError{
				Host:   p.Kind,
				Flags:  []string{f.Flag()},
				Reason: fmt.Sprintf("requires a file target, got %s", r.Target.Kind),
			}
		}
	}

	if r.Commits && r.Target.Explicit {
		return &UnsupportedCombinationError{
			Host:   p.Kind,
			Flags:  []string{"--commits"},
			Reason: "does not take a target",
		}
	}

	return nil
}
