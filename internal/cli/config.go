package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config holds filter defaults loaded from a YAML file. Flags set
// explicitly on the command line override file values.
type Config struct {
	MinSize       string   `yaml:"min-size"`
	MaxSize       string   `yaml:"max-size"`
	ModifiedSince string   `yaml:"modified-since"`
	Skip          []string `yaml:"skip"`
	Pass          []string `yaml:"pass"`
	Output        string   `yaml:"output"`
}

// LoadConfig reads and parses a defaults file.
func LoadConfig(path string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}

	return cfg, nil
}

// apply fills in values from cfg for flags not set on the command line.
func (f *scanFlags) apply(cmd *cobra.Command, cfg Config) {
	changed := cmd.Flags().Changed

	if !changed("min-size") && cfg.MinSize != "" {
		f.minSize = cfg.MinSize
	}

	if !changed("max-size") && cfg.MaxSize != "" {
		f.maxSize = cfg.MaxSize
	}

	if !changed("modified-since") && cfg.ModifiedSince != "" {
		f.modifiedSince = cfg.ModifiedSince
	}

	if !changed("skip") && len(cfg.Skip) > 0 {
		f.skip = cfg.Skip
	}

	if !changed("pass") && len(cfg.Pass) > 0 {
		f.pass = cfg.Pass
	}

	if !changed("output") && cfg.Output != "" {
		f.output = cfg.Output
	}
}
