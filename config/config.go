package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable parameter the pipeline's stages accept.
type Config struct {
	// SeamAngleThresholdDeg is the dihedral-angle threshold, in
	// degrees, above which a manifold edge becomes a seam.
	SeamAngleThresholdDeg float64 `yaml:"seam_angle_threshold_deg"`

	// PackingMargin is the margin, in [0, 0.5), packing.Pack leaves on
	// all sides and between islands.
	PackingMargin float64 `yaml:"packing_margin"`

	// CoverageResolution is the side length of metrics.Compute's
	// coverage raster grid.
	CoverageResolution int `yaml:"coverage_resolution"`

	// Seed is reserved for any place a deterministic pseudo-random
	// choice is needed, such as a future stochastic packing heuristic;
	// no package in this module reads it today.
	Seed int64 `yaml:"seed"`
}

// Default returns the Config this repository's tests and CLI use when
// no override is supplied.
func Default() Config {
	return Config{
		SeamAngleThresholdDeg: 60,
		PackingMargin:         0.02,
		CoverageResolution:    256,
		Seed:                  1,
	}
}

// Load reads a YAML file at path and returns a Config with every
// unset field filled from Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	raw := struct {
		SeamAngleThresholdDeg *float64 `yaml:"seam_angle_threshold_deg"`
		PackingMargin         *float64 `yaml:"packing_margin"`
		CoverageResolution    *int     `yaml:"coverage_resolution"`
		Seed                  *int64   `yaml:"seed"`
	}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	if raw.SeamAngleThresholdDeg != nil {
		cfg.SeamAngleThresholdDeg = *raw.SeamAngleThresholdDeg
	}
	if raw.PackingMargin != nil {
		cfg.PackingMargin = *raw.PackingMargin
	}
	if raw.CoverageResolution != nil {
		cfg.CoverageResolution = *raw.CoverageResolution
	}
	if raw.Seed != nil {
		cfg.Seed = *raw.Seed
	}
	return cfg, nil
}
