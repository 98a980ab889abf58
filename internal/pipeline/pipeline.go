// Package pipeline orchestrates a single release run.
//
// Phase sequence:
//  1. PARSE:    semver.Parse() on the triggering tag
//  2. SNAPSHOT: tags.Repository.ListTags() — one consistent snapshot
//  3. RESOLVE:  resolve.Highest() against the full snapshot
//  4. EMIT:     decision.Emit() — the immutable hand-off record
//  5. PUBLISH:  publish.Run() — concurrent fan-out to the stages
//
// Fatal errors from phases 1-4 return (nil, err). Stage errors land in
// Result.StageResults: one stage failing never aborts or hides another.
// No stage starts before the decision is fully computed.
package pipeline

import (
	"context"
	"fmt"

	"github.com/relaykit/cli/internal/decision"
	"github.com/relaykit/cli/internal/output"
	"github.com/relaykit/cli/internal/publish"
	"github.com/relaykit/cli/internal/resolve"
	"github.com/relaykit/cli/internal/semver"
	"github.com/relaykit/cli/internal/tags"
)

// Options configures a release run.
type Options struct {
	// RawTag is the tag that triggered the run.
	RawTag string

	// Repository enumerates the full tag history. Required for semantic
	// tags; a non-semantic tag never consults it.
	Repository tags.Repository

	// RestrictToMajor scopes the highest-semver decision to one major
	// line. Nil means the full history competes.
	RestrictToMajor *uint64

	// Stages are the publish stages to fan out to. May be empty for
	// resolve-only runs.
	Stages []publish.Stage
}

// Validate checks that the options are usable.
func (o *Options) Validate() error {
	if o.RawTag == "" {
		return fmt.Errorf("raw tag is required")
	}
	if o.Repository == nil {
		return fmt.Errorf("tag repository is required")
	}
	return nil
}

// Result carries the decision and per-stage outcomes of one run.
type Result struct {
	// Decision is the single hand-off record all stages consumed.
	Decision decision.Decision

	// Duplicates lists tags that parse to the same version as the
	// triggering tag under a different spelling (data inconsistency;
	// the publish is treated as an idempotent overwrite).
	Duplicates []string

	// StageResults holds one entry per configured stage.
	StageResults []publish.Result
}

// Run executes the release pipeline for one tag.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	// Phase 1: PARSE. A non-semantic tag is not a fault: the versioned
	// artifacts may still be published, but the highest-semver logic is
	// skipped and latest pointers stay put.
	current, ok := semver.Parse(opts.RawTag)

	var (
		outcome resolve.Outcome
		d       decision.Decision
	)

	if !ok {
		output.Info("tag is not a semantic release version; latest pointers will not be advanced",
			"tag", opts.RawTag)
		d = decision.Emit(opts.RawTag, semver.Version{}, false, false)
	} else {
		// Phase 2: SNAPSHOT. A failure here is fatal — resolving against
		// a partial tag set could flag a stale version as highest.
		snapshot, err := opts.Repository.ListTags(ctx)
		if err != nil {
			return nil, err
		}
		output.Debug("tag snapshot", "count", len(snapshot))

		// Phase 3: RESOLVE.
		outcome = resolve.Highest(current, snapshot, resolve.Options{
			RestrictToMajor: opts.RestrictToMajor,
		})
		for _, dup := range outcome.Duplicates {
			output.Warn("version already tagged under a different name; treating publish as idempotent overwrite",
				"tag", opts.RawTag, "duplicate", dup)
		}
		output.Info("resolved release",
			"tag", output.FormatTag(opts.RawTag),
			"considered", outcome.Considered,
			"verdict", output.FormatVerdict(outcome.IsHighest),
		)

		// Phase 4: EMIT.
		d = decision.Emit(opts.RawTag, current, true, outcome.IsHighest)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 5: PUBLISH. The decision is complete before any stage starts.
	var stageResults []publish.Result
	if len(opts.Stages) > 0 {
		stageResults = publish.Run(ctx, d, opts.Stages)
	}

	return &Result{
		Decision:     d,
		Duplicates:   outcome.Duplicates,
		StageResults: stageResults,
	}, nil
}
