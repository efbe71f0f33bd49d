// Package resolve turns a remote URL, repository state and command-line
// input into a browse URL.
//
// [Resolve] runs the engine in a fixed order:
//
//  1. remote.Parse: remote URL to host identity
//  2. host.Lookup: identity kind to URL profile
//  3. request.New: input and repository state to a browse request
//  4. feature.Validate: reject combinations the host cannot render
//  5. urlbuild.Build: render the URL
//
// Nothing is printed or opened here; errors come back typed so the caller can
// map them to exit codes.
package resolve
