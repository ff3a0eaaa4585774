package config

import _ "embed"

// DefaultConfigYAML built-in defaults, overridden by external files and TEMPLO_* variables
//
//go:embed default.yaml
var DefaultConfigYAML []byte
