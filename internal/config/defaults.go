package config

import (
	_ "embed"
)

//go:embed defaults/gridfall.yaml
var defaultGridfallYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGridfallYAML
}
