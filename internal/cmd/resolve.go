package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	rerrors "github.com/relaykit/cli/internal/errors"
	"github.com/relaykit/cli/internal/output"
	"github.com/relaykit/cli/internal/pipeline"
	"github.com/relaykit/cli/internal/tags"
)

// NewResolveCmd creates the resolve command.
func NewResolveCmd() *cobra.Command {
	var (
		outputFlag string
		majorFlag  int
	)

	cmd := &cobra.Command{
		Use:   "resolve <tag>",
		Short: "Compute the release decision for a tag",
		Long: `Compute the release decision for a tag without publishing anything.

The decision record carries the canonical version, the unprefixed
version string, and the highest-semver verdict that publish stages
consume. A non-semantic tag is not an error: the verdict is simply
false.

Examples:
  # Human-readable summary
  relay resolve v1.4.0

  # Machine-readable, for CI pipelines
  relay resolve v1.4.0 -o json

  # Scope the decision to the v2 line
  relay resolve v2.1.0 --major 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runResolve(args[0], outputFlag, majorFlag)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "text",
		"Output format: text, yaml, json")
	cmd.Flags().IntVar(&majorFlag, "major", -1,
		"Restrict the highest-semver decision to this major line")

	return cmd
}

// runResolve executes the resolve command.
func runResolve(rawTag, format string, major int) error {
	switch format {
	case "text", "yaml", "json":
	default:
		return rerrors.NewExitError(
			fmt.Errorf("invalid output format %q (valid: text, yaml, json)", format),
			ExitValidationError,
		)
	}

	cfg := GetConfig()

	result, err := pipeline.Run(context.Background(), pipeline.Options{
		RawTag:          rawTag,
		Repository:      tags.NewGitRepository(cfg.Repo),
		RestrictToMajor: restrictMajor(cfg, major),
	})
	if err != nil {
		return rerrors.NewExitError(err, ExitCodeFromError(err))
	}

	d := result.Decision
	if format == "text" {
		output.Print(output.DecisionSummary(d.RawTag, d.Unprefixed, d.IsSemantic, d.IsHighest))
		return nil
	}

	rendered, err := d.Render(format)
	if err != nil {
		return rerrors.NewExitError(err, ExitGeneralError)
	}
	output.Println(string(rendered))

	return nil
}
