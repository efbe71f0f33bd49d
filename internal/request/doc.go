// Package request turns command-line input and repository state into a
// normalized browse [Request].
//
// Target classification:
//
//   - empty: the working directory (root or directory)
//   - 7 or 40 hex characters: a commit hash
//   - anything else: a path relative to the working directory, classified as
//     file or directory by looking it up on the work tree filesystem
//
// A path that does not exist or leaves the repository is reported as an
// [*AmbiguousTargetError]. Flag combinations are validated later by the
// feature package.
package request
