package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/githubnext/agentlint/pkg/constants"
	"github.com/githubnext/agentlint/pkg/logger"
)

var configLog = logger.New("cli:config")

// Config is the optional runner configuration loaded from .agentlint.yml.
// It only tunes discovery; validation rules are fixed.
type Config struct {
	// Dir overrides the default agents directory for batch runs.
	Dir string `yaml:"dir"`
	// Skip lists extra path substrings to exclude from directory scans,
	// on top of the built-in template/docs markers.
	Skip []string `yaml:"skip"`
}

// LoadConfig reads a runner config file. A missing file is only an error
// when the path was given explicitly; the default lookup quietly falls
// back to an empty config.
func LoadConfig(path string, explicit bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			configLog.Printf("No config file at %s, using defaults", path)
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	configLog.Printf("Loaded config: path=%s, dir=%q, skip=%v", path, cfg.Dir, cfg.Skip)
	return &cfg, nil
}

// SkipMarkers returns the built-in skip markers plus any configured
// extras, deduplicated, in stable order.
func (c *Config) SkipMarkers() []string {
	markers := slices.Clone(constants.SkipPathMarkers)
	for _, extra := range c.Skip {
		if extra != "" && !slices.Contains(markers, extra) {
			markers = append(markers, extra)
		}
	}
	return markers
}
