package main

import (
	"os"

	"gopkg.in/yaml.v2"
)

// fileConfig is the optional --config file's shape. Every field is
// parsed, but run applies only Format (via applyConfig); the strategy,
// tolerance and unicode_norm values are not applied to the command.
type fileConfig struct {
	Strategy       string  `yaml:"strategy"`
	SnapTolerance  float64 `yaml:"snap_tolerance"`
	JoinTolerance  float64 `yaml:"join_tolerance"`
	TextTolerance  float64 `yaml:"text_tolerance"`
	XTolerance     float64 `yaml:"x_tolerance"`
	YTolerance     float64 `yaml:"y_tolerance"`
	UnicodeNorm    string  `yaml:"unicode_norm"`
	Format         string  `yaml:"format"`
}

func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &fileConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
