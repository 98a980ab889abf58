package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relaykit/cli/internal/config"
	rerrors "github.com/relaykit/cli/internal/errors"
	"github.com/relaykit/cli/internal/output"
	"github.com/relaykit/cli/internal/pipeline"
	"github.com/relaykit/cli/internal/publish"
	"github.com/relaykit/cli/internal/tags"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	var (
		majorFlag       int
		skipImagesFlag  bool
		skipChartFlag   bool
		skipPackageFlag bool
		dryRunFlag      bool
	)

	cmd := &cobra.Command{
		Use:   "run <tag>",
		Short: "Resolve a release tag and publish its artifacts",
		Long: `Resolve a release tag against the full tag history and fan the
decision out to the configured publish stages.

Stages run concurrently once the decision is computed. Every stage
publishes the versioned artifact; mutable "latest" pointers are only
advanced when the tag is the highest semantic version.

Examples:
  # Publish everything for a new tag
  relay run v1.4.0

  # Preview the publish plan without executing commands
  relay run v1.4.0 --dry-run

  # Maintenance release on the v1 line with a per-major latest pointer
  relay run v1.9.3 --major 1

  # Publish images only
  relay run v1.4.0 --skip-chart --skip-package`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRun(args[0], majorFlag, dryRunFlag, stageToggles{
				images: !skipImagesFlag,
				chart:  !skipChartFlag,
				pkg:    !skipPackageFlag,
			})
		},
	}

	cmd.Flags().IntVar(&majorFlag, "major", -1,
		"Restrict the highest-semver decision to this major line")
	cmd.Flags().BoolVar(&skipImagesFlag, "skip-images", false, "Skip the container image stage")
	cmd.Flags().BoolVar(&skipChartFlag, "skip-chart", false, "Skip the Helm chart stage")
	cmd.Flags().BoolVar(&skipPackageFlag, "skip-package", false, "Skip the source package stage")
	cmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Log publish commands instead of executing them")

	return cmd
}

// stageToggles combines config stage switches with --skip-* flags.
type stageToggles struct {
	images bool
	chart  bool
	pkg    bool
}

// runRun executes the run command.
func runRun(rawTag string, major int, dryRun bool, toggles stageToggles) error {
	cfg := GetConfig()

	stages, err := buildStages(cfg, toggles, dryRun)
	if err != nil {
		return rerrors.NewExitError(err, ExitValidationError)
	}

	ctx := context.Background()
	opts := pipeline.Options{
		RawTag:          rawTag,
		Repository:      tags.NewGitRepository(cfg.Repo),
		RestrictToMajor: restrictMajor(cfg, major),
		Stages:          stages,
	}

	var result *pipeline.Result
	run := func() error {
		var runErr error
		result, runErr = pipeline.Run(ctx, opts)
		return runErr
	}
	if verboseFlag {
		// Verbose runs log every phase; a spinner would only fight the log lines.
		err = run()
	} else {
		err = output.RunWithSpinner(ctx, "Publishing "+rawTag, run)
	}
	if err != nil {
		return rerrors.NewExitError(err, ExitCodeFromError(err))
	}

	for _, sr := range result.StageResults {
		output.Println(output.FormatStageResult(sr.Stage, sr.Err))
	}

	if errs := publish.Failed(result.StageResults); len(errs) > 0 {
		return rerrors.NewExitError(
			fmt.Errorf("%d of %d publish stages failed", len(errs), len(result.StageResults)),
			ExitPublishError,
		)
	}

	return nil
}

// buildStages assembles the enabled publish stages from configuration.
func buildStages(cfg *config.Config, toggles stageToggles, dryRun bool) ([]publish.Stage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runner := &publish.ExecRunner{Dir: cfg.Repo, DryRun: dryRun}

	var stages []publish.Stage
	if cfg.Stages.Images && toggles.images {
		stages = append(stages, &publish.ImageStage{
			Registry:   cfg.Registry,
			Components: cfg.Components,
			Runner:     runner,
		})
	}
	if cfg.Stages.Chart && toggles.chart {
		stages = append(stages, &publish.ChartStage{
			Dir:        cfg.Chart.Dir,
			Repo:       cfg.Chart.Repo,
			LatestHook: cfg.Chart.LatestHook,
			Runner:     runner,
		})
	}
	if cfg.Stages.Package && toggles.pkg {
		stages = append(stages, &publish.PackageStage{
			UploadHook: cfg.Package.UploadHook,
			LatestHook: cfg.Package.LatestHook,
			Runner:     runner,
		})
	}

	return stages, nil
}

// restrictMajor merges the --major flag with the configured major line;
// the flag wins when set.
func restrictMajor(cfg *config.Config, flag int) *uint64 {
	if flag >= 0 {
		major := uint64(flag)
		return &major
	}
	return cfg.RestrictToMajor()
}
