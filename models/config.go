// Package models defines shared configuration and result types.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds runtime configuration for a counting run. Values come
// from the config file when one is given; CLI flags take precedence over
// file values.
type RunConfig struct {
	URLs        []string `yaml:"urls"`
	Files       []string `yaml:"files"`
	WorkerCount int      `yaml:"workers"`
	TopN        int      `yaml:"top"`
	Language    string   `yaml:"language"`  // force a language instead of detecting per document
	Stopwords   []string `yaml:"stopwords"` // extra stopwords on top of the built-in set
	OutputDir   string   `yaml:"output_dir"`
	DBPath      string   `yaml:"db_path"`
}

// LoadConfig reads a YAML run configuration from path.
func LoadConfig(path string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
