package publish

import (
	"context"
	"fmt"

	"github.com/relaykit/cli/internal/decision"
)

// PackageStage uploads the source package for a release through configured
// command hooks. Package building and index credentials are the hooks'
// business; this stage only sequences them and gates the index alias on
// the highest-semver verdict.
type PackageStage struct {
	// UploadHook publishes the versioned package. Required.
	UploadHook []string

	// LatestHook advances the package index's default alias. Run only for
	// highest releases; optional.
	LatestHook []string

	// Runner executes the hooks.
	Runner CommandRunner
}

// Name implements Stage.
func (s *PackageStage) Name() string {
	return "package"
}

// Publish uploads the versioned package, then the latest alias if allowed.
func (s *PackageStage) Publish(ctx context.Context, d decision.Decision) error {
	if len(s.UploadHook) == 0 {
		return fmt.Errorf("package stage requires an upload command")
	}

	if err := runHook(ctx, s.Runner, s.UploadHook, d); err != nil {
		return fmt.Errorf("uploading package: %w", err)
	}

	if !d.IsHighest {
		return nil
	}
	if err := runHook(ctx, s.Runner, s.LatestHook, d); err != nil {
		return fmt.Errorf("advancing package index alias: %w", err)
	}
	return nil
}
