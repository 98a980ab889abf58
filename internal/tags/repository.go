// Package tags provides read-only enumeration of release tags.
//
// A Repository yields the complete set of tags known at resolution time.
// The snapshot is taken once per run and never refreshed mid-resolution;
// tags created elsewhere while a run is in flight are not observed.
package tags

import (
	"context"
	"sort"

	"github.com/relaykit/cli/internal/semver"
)

// Repository enumerates all tags known to the source history.
type Repository interface {
	// ListTags returns a consistent snapshot of every tag name. A failure
	// here must abort resolution: callers are never allowed to fall back
	// to a partial or empty set.
	ListTags(ctx context.Context) ([]string, error)
}

// StaticSet is an in-memory Repository for pipelines that are handed a tag
// list directly (CI environments often inject it) and for tests.
type StaticSet []string

// ListTags returns a copy of the set so callers cannot mutate the snapshot.
func (s StaticSet) ListTags(_ context.Context) ([]string, error) {
	out := make([]string, len(s))
	copy(out, s)
	return out, nil
}

// FilterMajor keeps only the tags that parse as semantic versions on the
// given major line. Non-semantic tags are dropped.
func FilterMajor(all []string, major uint64) []string {
	var out []string
	for _, raw := range all {
		v, ok := semver.Parse(raw)
		if !ok || v.Major() != major {
			continue
		}
		out = append(out, raw)
	}
	return out
}

// SortedVersions parses the tags, drops non-semantic ones, and returns the
// parsed versions in descending precedence order.
func SortedVersions(all []string) []semver.Version {
	var vs []semver.Version
	for _, raw := range all {
		if v, ok := semver.Parse(raw); ok {
			vs = append(vs, v)
		}
	}
	sort.Slice(vs, func(i, j int) bool {
		return vs[i].Compare(vs[j]) > 0
	})
	return vs
}
