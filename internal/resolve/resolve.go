package resolve

import (
	"fmt"
	"strings"

	"github.com/raphi011/git-browse/internal/feature"
	"github.com/raphi011/git-browse/internal/host"
	"github.com/raphi011/git-browse/internal/remote"
	"github.com/raphi011/git-browse/internal/request"
	"github.com/raphi011/git-browse/internal/urlbuild"
)

// Input is everything needed to resolve one URL.
type Input struct {
	RemoteURL string

	// Domains maps self-hosted host names to kinds and roots.
	Domains host.Domains

	// Root replaces the identity's web root when set (--root).
	Root string

	Args    request.Input
	Context request.Context
}

// Result is a resolved URL plus the intermediate values that produced it.
type Result struct {
	URL      string
	Identity remote.Identity
	Request  request.Request
	View     host.View
}

// Resolve runs parse, lookup, request construction, validation and build.
// Errors are one of *remote.UnrecognizedHostError,
// *request.AmbiguousTargetError, *feature.UnsupportedCombinationError or a
// wrapped collaborator error.
func Resolve(in Input) (Result, error) {
	id, err := remote.Parse(in.RemoteURL, in.Domains)
	if err != nil {
		return Result{}, err
	}
	if in.Root != "" {
		id.Root = strings.TrimRight(in.Root, "/")
	}

	profile, ok := host.Lookup(id.Kind)
	if !ok {
		return Result{}, fmt.Errorf("no URL profile for %s", id.Kind)
	}

	req, err := request.New(in.Args, in.Context)
	if err != nil {
		return Result{}, err
	}

	if err := feature.Validate(req, profile); err != nil {
		return Result{}, err
	}

	return Result{
		URL:      urlbuild.Build(id, profile, req),
		Identity: id,
		Request:  req,
		View:     urlbuild.SelectView(req),
	}, nil
}
