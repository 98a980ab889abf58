package cmd

import (
	"context"

	"github.com/spf13/cobra"

	rerrors "github.com/relaykit/cli/internal/errors"
	"github.com/relaykit/cli/internal/output"
	"github.com/relaykit/cli/internal/tags"
)

// NewTagsCmd creates the tags command.
func NewTagsCmd() *cobra.Command {
	var (
		majorFlag int
		allFlag   bool
	)

	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List release tags from the repository",
		Long: `List the repository's release tags in descending semantic-version
order. Non-semantic tags are omitted unless --all is given.

Examples:
  # Release tags, newest first
  relay tags

  # Only the v1 line
  relay tags --major 1

  # Every tag, including non-release ones
  relay tags --all`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTags(majorFlag, allFlag)
		},
	}

	cmd.Flags().IntVar(&majorFlag, "major", -1, "Only list tags on this major line")
	cmd.Flags().BoolVar(&allFlag, "all", false, "Include non-semantic tags (listed after releases)")

	return cmd
}

// runTags executes the tags command.
func runTags(major int, all bool) error {
	cfg := GetConfig()

	snapshot, err := tags.NewGitRepository(cfg.Repo).ListTags(context.Background())
	if err != nil {
		return rerrors.NewExitError(err, ExitCodeFromError(err))
	}

	candidates := snapshot
	if major >= 0 {
		candidates = tags.FilterMajor(snapshot, uint64(major))
	}

	semantic := make(map[string]bool, len(candidates))
	for _, v := range tags.SortedVersions(candidates) {
		semantic[v.Raw()] = true
		output.Println(v.Raw())
	}

	if !all {
		return nil
	}
	for _, raw := range snapshot {
		if !semantic[raw] {
			output.Println(raw)
		}
	}

	return nil
}
