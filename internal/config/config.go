// Package config provides configuration loading for the relay CLI.
package config

import (
	"fmt"

	"github.com/relaykit/cli/internal/errors"
)

// Config is the full relay configuration.
type Config struct {
	// Repo is the path to the source checkout whose tags are enumerated.
	Repo string `mapstructure:"repo"`

	// Registry is the container image registry prefix, e.g. "ghcr.io/acme".
	Registry string `mapstructure:"registry"`

	// Components are the per-release container images.
	Components []string `mapstructure:"components"`

	// Chart configures the Helm chart stage.
	Chart ChartConfig `mapstructure:"chart"`

	// Package configures the source package stage.
	Package PackageConfig `mapstructure:"package"`

	// MajorLine restricts the highest-semver decision to one major line.
	// Negative means unrestricted.
	MajorLine int `mapstructure:"majorLine"`

	// Stages toggles individual publish stages.
	Stages StagesConfig `mapstructure:"stages"`
}

// ChartConfig configures the chart publish stage.
type ChartConfig struct {
	// Dir is the chart source directory.
	Dir string `mapstructure:"dir"`

	// Repo is the chart repository URL.
	Repo string `mapstructure:"repo"`

	// LatestHook is run only for highest releases ({version}/{tag}
	// placeholders are expanded).
	LatestHook []string `mapstructure:"latestHook"`
}

// PackageConfig configures the source package publish stage.
type PackageConfig struct {
	// UploadHook publishes the versioned package.
	UploadHook []string `mapstructure:"uploadHook"`

	// LatestHook advances the package index alias for highest releases.
	LatestHook []string `mapstructure:"latestHook"`
}

// StagesConfig toggles publish stages.
type StagesConfig struct {
	Images  bool `mapstructure:"images"`
	Chart   bool `mapstructure:"chart"`
	Package bool `mapstructure:"package"`
}

// WithDefaults returns a copy of the config with defaults applied.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Repo == "" {
		out.Repo = "."
	}
	return &out
}

// RestrictToMajor returns the configured major-line restriction, or nil
// when unrestricted.
func (c *Config) RestrictToMajor() *uint64 {
	if c.MajorLine < 0 {
		return nil
	}
	major := uint64(c.MajorLine)
	return &major
}

// Validate checks that the enabled stages have the settings they need.
func (c *Config) Validate() error {
	if c.Stages.Images {
		if c.Registry == "" {
			return errors.Wrap(errors.ErrValidation,
				fmt.Errorf("registry is empty"), "images stage enabled")
		}
		if len(c.Components) == 0 {
			return errors.Wrap(errors.ErrValidation,
				fmt.Errorf("no components configured"), "images stage enabled")
		}
	}

	if c.Stages.Chart {
		if c.Chart.Dir == "" || c.Chart.Repo == "" {
			return errors.Wrap(errors.ErrValidation,
				fmt.Errorf("chart dir and repo are required"), "chart stage enabled")
		}
	}

	if c.Stages.Package && len(c.Package.UploadHook) == 0 {
		return errors.Wrap(errors.ErrValidation,
			fmt.Errorf("package uploadHook is required"), "package stage enabled")
	}

	return nil
}
