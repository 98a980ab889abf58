package publish

import (
	"context"
	"fmt"

	"github.com/relaykit/cli/internal/decision"
)

// ImageStage pushes per-component container images. Images are expected to
// be built and tagged <registry>/<component>:<version> by an earlier CI
// step; this stage pushes them and advances the :latest tag when the
// release is the highest semantic version.
type ImageStage struct {
	// Registry is the image registry prefix, e.g. "ghcr.io/acme".
	Registry string

	// Components are the image names published per release.
	Components []string

	// Runner executes the container CLI.
	Runner CommandRunner
}

// Name implements Stage.
func (s *ImageStage) Name() string {
	return "images"
}

// Publish pushes every component image, then retags latest when allowed.
func (s *ImageStage) Publish(ctx context.Context, d decision.Decision) error {
	for _, component := range s.Components {
		ref := fmt.Sprintf("%s/%s:%s", s.Registry, component, d.Unprefixed)

		if err := s.Runner.Run(ctx, "docker", "push", ref); err != nil {
			return fmt.Errorf("pushing %s: %w", ref, err)
		}

		if !d.IsHighest {
			continue
		}

		latest := fmt.Sprintf("%s/%s:latest", s.Registry, component)
		if err := s.Runner.Run(ctx, "docker", "tag", ref, latest); err != nil {
			return fmt.Errorf("retagging %s: %w", latest, err)
		}
		if err := s.Runner.Run(ctx, "docker", "push", latest); err != nil {
			return fmt.Errorf("pushing %s: %w", latest, err)
		}
	}

	return nil
}
