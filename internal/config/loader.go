package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for relay configuration.
const envPrefix = "RELAY"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("repo", "RELAY_REPO")
	_ = v.BindEnv("registry", "RELAY_REGISTRY")
	_ = v.BindEnv("majorLine", "RELAY_MAJOR_LINE")

	// Negative means "no major-line restriction".
	v.SetDefault("majorLine", -1)
	v.SetDefault("stages.images", true)
	v.SetDefault("stages.chart", true)
	v.SetDefault("stages.package", true)

	return &Loader{v: v}
}

// Load loads configuration from the given file path. A missing file is not
// an error; defaults and environment variables still apply. Environment
// variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile != "" {
		l.v.SetConfigFile(configFile)
		l.v.SetConfigType("yaml")

		if err := l.v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return cfg.WithDefaults(), nil
}
