// Package remote parses git remote URLs into hosting-service identities.
//
// Accepted forms:
//
//	ssh://git@HOST:PORT/PATH.git
//	git@HOST:PATH.git
//	git@HOST/PATH.git
//	https://[user@]HOST/PATH[.git]
//	git://HOST/PATH
//
// Detection order:
//
//  1. Configured [host.Domains] (exact host name, case-insensitive)
//  2. Well-known hosts (github.com, gitlab.com, gitorious.org, bitbucket.org)
//  3. Host name patterns (github, gitlab, gitorious, stash, bitbucket)
//
// Stash remotes are rewritten to their web layout: /scm/PROJ/repo and /PROJ/repo
// become projects/PROJ/repos/repo, ~user/repo becomes users/user/repos/repo.
// Anything that cannot be mapped yields an [*UnrecognizedHostError].
package remote
