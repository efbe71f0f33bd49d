// Package prompt provides the interactive remote picker.
//
// The picker renders to stderr so stdout stays clean for the URL
// (e.g. url=$(git-browse -i --url-only) still prompts on the terminal).
package prompt
