// Package host defines the supported git hosting platforms and the static
// profile table describing how each one lays out its web URLs.
//
// # Kinds
//
// [Kind] is a closed set: Stash (Bitbucket Server), GitHub, GitLab, Gitorious
// and Bitbucket Cloud. Every kind has exactly one [Profile], returned by
// [Lookup]. Adding a host means adding a constant, a profile and a case in
// the Lookup switch.
//
// # Profiles
//
// A profile holds one [Template] per [View] plus the line-fragment format and
// the [Feature] set. Templates are relative to the repository base URL and use
// the {ref}, {path} and {sha} placeholders:
//
//	GitHub file:   /blob/{ref}/{path}
//	Stash file:    /browse/{path}       (ref goes into ?at=)
//	Gitorious dir: /source/{ref}:{path}
//
// # Custom Domains
//
// Self-hosted instances are described by [Domains], a host name to [Override]
// map built from configuration and handed to the remote parser. Profiles
// themselves never change.
package host
