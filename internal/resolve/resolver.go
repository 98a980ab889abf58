// Package resolve decides whether a release version is the highest
// semantic version among all known tags.
//
// The decision is made against the entire tag history, not just the
// previous tag: publishing a patch for an old minor line after a newer
// minor has shipped must not advance latest pointers.
package resolve

import (
	"github.com/relaykit/cli/internal/semver"
)

// Options scopes the highest-semver computation.
type Options struct {
	// RestrictToMajor, when set, drops candidates outside that major line.
	// Workflows that keep a per-major "latest" (v1-latest, v2-latest) use
	// this to let an old major line keep its own pointer.
	RestrictToMajor *uint64
}

// Outcome is the result of a highest-semver computation.
type Outcome struct {
	// IsHighest is true iff the current version equals the maximum over
	// the parsed candidates plus the current version itself.
	IsHighest bool

	// Considered is the number of candidate tags that parsed as semantic
	// versions and survived major-line scoping.
	Considered int

	// Duplicates lists candidate tags that parse to the exact same version
	// as the current one under a different spelling. A duplicate means the
	// same version was tagged twice; it still counts as highest, but
	// callers should treat the publish as an idempotent overwrite and warn.
	Duplicates []string
}

// Highest computes whether current is the highest semantic version among
// candidates. Candidates that do not parse as semantic versions neither win
// nor block; they are simply ignored. The computation is pure: same inputs,
// same outcome.
func Highest(current semver.Version, candidates []string, opts Options) Outcome {
	out := Outcome{IsHighest: true}

	for _, raw := range candidates {
		v, ok := semver.Parse(raw)
		if !ok {
			continue
		}
		if opts.RestrictToMajor != nil && v.Major() != *opts.RestrictToMajor {
			continue
		}
		out.Considered++

		if v.Equal(current) && raw != current.Raw() {
			out.Duplicates = append(out.Duplicates, raw)
		}
		if v.Compare(current) > 0 {
			out.IsHighest = false
		}
	}

	return out
}

// RestrictToMajor is a convenience constructor for Options.
func RestrictToMajor(major uint64) Options {
	return Options{RestrictToMajor: &major}
}
