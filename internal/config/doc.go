// Package config loads gosolid settings from YAML.
//
// Files are layered from least to most specific: built-in defaults,
// ~/.config/gosolid/config.yaml, ./.gosolid.yaml, then a file named with
// --config. Command-line flags are applied on top by the CLI.
package config
