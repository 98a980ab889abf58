// Package semver parses release tags into structured semantic versions.
//
// A release tag has the fixed form "v<major>.<minor>.<patch>" with an
// optional "-<pre-release>" suffix. Tags that do not match are not errors:
// repositories carry plenty of non-release tags, and callers are expected
// to skip them rather than abort.
package semver

import (
	"regexp"
	"strconv"
	"strings"

	sv "github.com/Masterminds/semver/v3"
)

// Marker is the fixed single-character prefix of release tags.
const Marker = "v"

// tagPattern matches Marker + major.minor.patch with an optional pre-release
// suffix of dot-separated alphanumeric-or-hyphen identifiers. An empty
// identifier (trailing hyphen or dot) does not match.
var tagPattern = regexp.MustCompile(
	`^` + Marker + `(\d+)\.(\d+)\.(\d+)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?$`,
)

// Version is a parsed release tag. The zero value is not a valid version;
// obtain one through Parse.
type Version struct {
	raw string
	v   *sv.Version
}

// Parse converts a raw tag into a Version. ok is false when the tag is not
// a semantic release version. Numeric components with leading zeros still
// parse as plain integers, so "v01.2.3" and "v1.2.3" are the same version.
func Parse(raw string) (Version, bool) {
	m := tagPattern.FindStringSubmatch(raw)
	if m == nil {
		return Version{}, false
	}

	major, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return Version{}, false
	}
	minor, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return Version{}, false
	}
	patch, err := strconv.ParseUint(m[3], 10, 64)
	if err != nil {
		return Version{}, false
	}

	return Version{
		raw: raw,
		v:   sv.New(major, minor, patch, m[4], ""),
	}, true
}

// MustParse is Parse for trusted literals in tests; it panics on a
// non-semantic tag.
func MustParse(raw string) Version {
	v, ok := Parse(raw)
	if !ok {
		panic("semver: not a semantic release tag: " + raw)
	}
	return v
}

// Raw returns the original tag string the version was parsed from.
func (v Version) Raw() string {
	return v.raw
}

// Major returns the major component.
func (v Version) Major() uint64 {
	return v.v.Major()
}

// Minor returns the minor component.
func (v Version) Minor() uint64 {
	return v.v.Minor()
}

// Patch returns the patch component.
func (v Version) Patch() uint64 {
	return v.v.Patch()
}

// Prerelease returns the pre-release suffix, or "" for a final release.
func (v Version) Prerelease() string {
	return v.v.Prerelease()
}

// Canonical returns the normalized tag form "v<major>.<minor>.<patch>[-pre]",
// with any leading zeros in the numeric components dropped.
func (v Version) Canonical() string {
	return Marker + v.v.String()
}

// Unprefixed returns the original tag with the marker stripped. The
// numeric components are kept exactly as tagged; derived artifact names
// (image tags, chart versions) must match the pushed tag byte for byte.
func (v Version) Unprefixed() string {
	return Unprefix(v.raw)
}

// Compare orders v against o per semantic-version precedence: lexicographic
// on (major, minor, patch), then pre-release identifiers, where any
// pre-release sorts below the corresponding final release. Returns -1, 0
// or +1.
func (v Version) Compare(o Version) int {
	return v.v.Compare(o.v)
}

// Equal reports whether v and o denote the same version, regardless of how
// the raw tags were spelled.
func (v Version) Equal(o Version) bool {
	return v.v.Equal(o.v)
}

// String implements fmt.Stringer using the canonical form.
func (v Version) String() string {
	return v.Canonical()
}

// Unprefix strips exactly one leading marker from a raw tag. Tags that do
// not start with the marker are returned unchanged.
func Unprefix(raw string) string {
	return strings.TrimPrefix(raw, Marker)
}
