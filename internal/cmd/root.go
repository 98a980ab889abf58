package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/relaykit/cli/internal/config"
	"github.com/relaykit/cli/internal/output"
	"github.com/relaykit/cli/internal/version"
)

var (
	// Global flags
	configFlag  string
	repoFlag    string
	verboseFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	relayConfig *config.Config
)

// NewRootCmd creates the root command for the relay CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "relay",
		Short: "Release orchestration for tagged versions",
		Long: `relay turns a pushed version tag into a release decision and fans it
out to publish stages.

Given a tag, it determines whether the tag is the highest semantic
version ever released and hands that verdict to the configured publish
stages (container images, Helm chart, source package). Stages only
advance mutable "latest" pointers when the verdict is positive.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: RELAY_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&repoFlag, "repo", "", "Path to the source checkout (env: RELAY_REPO)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewResolveCmd())
	rootCmd.AddCommand(NewTagsCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	info := version.Get()
	output.Debug("relay started", "version", info.Version)

	cfg, err := config.NewLoader().Load(resolveConfigFile())
	if err != nil {
		return err
	}
	if repoFlag != "" {
		cfg.Repo = repoFlag
	}
	relayConfig = cfg

	return nil
}

// resolveConfigFile returns the config file path from flag or environment.
func resolveConfigFile() string {
	if configFlag != "" {
		return configFlag
	}
	return os.Getenv("RELAY_CONFIG")
}

// GetConfig returns the loaded configuration.
func GetConfig() *config.Config {
	return relayConfig
}
