// Package decision defines the release decision record handed to publish
// stages.
//
// The decision is computed exactly once per run and consumed read-only by
// every stage, so all artifact kinds agree on the same verdict. Stages must
// not re-derive version information themselves.
package decision

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/relaykit/cli/internal/semver"
)

// Decision is the immutable output record of a pipeline run.
type Decision struct {
	// RawTag is the tag string that triggered the run, unchanged.
	RawTag string `json:"rawTag" yaml:"rawTag"`

	// Version is the canonical semantic version ("v1.2.3"), or "" when the
	// tag is not semantic.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// Unprefixed is the raw tag with the leading marker stripped; equal to
	// RawTag when the tag never carried the marker.
	Unprefixed string `json:"unprefixed" yaml:"unprefixed"`

	// IsSemantic reports whether the tag parsed as a release version.
	IsSemantic bool `json:"isSemantic" yaml:"isSemantic"`

	// IsHighest reports whether this version is the highest semantic
	// version among all known tags. Always false for non-semantic tags;
	// only a true value may advance mutable latest pointers.
	IsHighest bool `json:"isHighest" yaml:"isHighest"`
}

// Emit packages a resolution result into the decision record.
// For non-semantic tags, pass ok=false; highest is forced to false since a
// non-semantic tag can never be the highest release.
func Emit(raw string, v semver.Version, ok, highest bool) Decision {
	d := Decision{
		RawTag:     raw,
		Unprefixed: semver.Unprefix(raw),
		IsSemantic: ok,
	}
	if !ok {
		return d
	}

	d.Version = v.Canonical()
	d.IsHighest = highest
	return d
}

// Render serializes the decision in the requested output format
// ("json" or "yaml"; anything else defaults to yaml).
func (d Decision) Render(format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(d, "", "  ")
	default:
		return yaml.Marshal(d)
	}
}
