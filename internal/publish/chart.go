package publish

import (
	"context"
	"fmt"

	"github.com/relaykit/cli/internal/decision"
)

// ChartStage packages and uploads the Helm chart for a release. The chart
// repository's default entry is only refreshed when the release is the
// highest semantic version, so chart consumers without a pinned version
// keep resolving to the true latest.
type ChartStage struct {
	// Dir is the chart source directory.
	Dir string

	// Repo is the chart repository URL the package is pushed to.
	Repo string

	// LatestHook is an optional command run only for highest releases,
	// typically a repository re-index. Placeholders {version} and {tag}
	// are expanded from the decision.
	LatestHook []string

	// Runner executes the helm CLI.
	Runner CommandRunner
}

// Name implements Stage.
func (s *ChartStage) Name() string {
	return "chart"
}

// Publish pushes the chart at the release version.
func (s *ChartStage) Publish(ctx context.Context, d decision.Decision) error {
	err := s.Runner.Run(ctx, "helm", "cm-push", s.Dir, s.Repo,
		"--version", d.Unprefixed,
		"--app-version", d.RawTag,
	)
	if err != nil {
		return fmt.Errorf("pushing chart to %s: %w", s.Repo, err)
	}

	if !d.IsHighest {
		return nil
	}
	if err := runHook(ctx, s.Runner, s.LatestHook, d); err != nil {
		return fmt.Errorf("refreshing chart repo default: %w", err)
	}
	return nil
}
