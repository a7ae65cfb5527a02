// Package config loads and defaults the tunable parameters this
// pipeline's stages accept: the seam dihedral-angle threshold, the
// packing margin, the coverage-metric raster resolution, and a
// deterministic seed reserved for stochastic packing heuristics.
//
// What
//
//	Default returns a Config with the values used throughout this
//	repository's tests; Load parses a YAML file via gopkg.in/yaml.v3
//	and fills in any field left unset with its default.
package config
