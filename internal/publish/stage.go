// Package publish fans a release decision out to independent publish
// stages.
//
// Stages only start once the decision is fully computed, run concurrently,
// and share nothing but read-only access to the decision record. A failure
// in one stage never cancels or suppresses its siblings: each stage's
// outcome is reported individually.
package publish

import (
	"context"
	"strings"
	"sync"

	"github.com/relaykit/cli/internal/decision"
	"github.com/relaykit/cli/internal/errors"
	"github.com/relaykit/cli/internal/output"
)

// Stage publishes one artifact kind for a release.
type Stage interface {
	// Name identifies the stage in logs and results.
	Name() string

	// Publish uploads the versioned artifact. Implementations must consult
	// d.IsHighest before touching any mutable latest pointer; when it is
	// false the versioned artifact is still published but existing
	// pointers are left untouched.
	Publish(ctx context.Context, d decision.Decision) error
}

// Result is the outcome of a single stage.
type Result struct {
	Stage string
	Err   error
}

// Run executes all stages concurrently against the same decision and
// returns one result per stage, in the order the stages were given.
func Run(ctx context.Context, d decision.Decision, stages []Stage) []Result {
	results := make([]Result, len(stages))

	var wg sync.WaitGroup
	for i, stage := range stages {
		wg.Add(1)
		go func(i int, stage Stage) {
			defer wg.Done()

			log := output.StageLogger(stage.Name())
			log.Debug("publishing", "tag", d.RawTag, "highest", d.IsHighest)

			err := stage.Publish(ctx, d)
			if err != nil {
				err = &errors.StageError{Stage: stage.Name(), Cause: err}
				log.Error("publish failed", "error", err)
			} else {
				log.Info("published", "version", d.Unprefixed)
			}
			results[i] = Result{Stage: stage.Name(), Err: err}
		}(i, stage)
	}
	wg.Wait()

	return results
}

// Failed collects the errors from a result set.
func Failed(results []Result) []error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// expandArgs substitutes decision placeholders in configured command
// arguments: {version} → unprefixed version, {tag} → raw tag.
func expandArgs(args []string, d decision.Decision) []string {
	out := make([]string, len(args))
	for i, a := range args {
		a = strings.ReplaceAll(a, "{version}", d.Unprefixed)
		a = strings.ReplaceAll(a, "{tag}", d.RawTag)
		out[i] = a
	}
	return out
}

// runHook executes a configured command hook with placeholders expanded.
// An empty hook is a no-op.
func runHook(ctx context.Context, r CommandRunner, hook []string, d decision.Decision) error {
	if len(hook) == 0 {
		return nil
	}
	args := expandArgs(hook, d)
	return r.Run(ctx, args[0], args[1:]...)
}
