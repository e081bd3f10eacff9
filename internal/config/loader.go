package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir     = ".config/gosolid"
	configFileName    = "config.yaml"
	projectConfigFile = ".gosolid.yaml"
)

// Load layers the default configuration, the user file, the project file
// and finally explicitPath when it is non-empty. Missing user and project
// files are skipped; a missing explicit file is an error.
func Load(explicitPath string) (Config, error) {
	cfg := Default()

	for _, locate := range []func() (string, error){userConfigPath, projectConfigPath} {
		path, err := locate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not determine config path: %v\n", err)
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		layer, err := loadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("loading config from %s: %w", path, err)
		}
		cfg = merge(cfg, layer)
	}

	if explicitPath != "" {
		layer, err := loadFile(explicitPath)
		if err != nil {
			return Config{}, fmt.Errorf("loading config from %s: %w", explicitPath, err)
		}
		cfg = merge(cfg, layer)
	}

	return cfg, nil
}

func userConfigPath() (string, error) {
	home, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, userConfigDir, configFileName), nil
}

func projectConfigPath() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigFile), nil
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing yaml: %w", err)
	}
	return cfg, nil
}

// merge overlays the set fields of overlay onto base.
func merge(base, overlay Config) Config {
	out := base
	if overlay.LogLevel != "" {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.LogFile != "" {
		out.LogFile = overlay.LogFile
	}
	if overlay.Color != nil {
		out.Color = overlay.Color
	}
	if overlay.Audit.Filter != "" {
		out.Audit.Filter = overlay.Audit.Filter
	}
	if overlay.Audit.DisabledRules != nil {
		out.Audit.DisabledRules = overlay.Audit.DisabledRules
	}
	if overlay.Diagram.MaxMethodsPerBox != nil {
		out.Diagram.MaxMethodsPerBox = overlay.Diagram.MaxMethodsPerBox
	}
	return out
}
