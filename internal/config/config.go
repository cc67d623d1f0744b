// Package config loads the optional extcheck.yaml project configuration
// and resolves effective check settings from flags, environment, and
// file, in that precedence order.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// CheckSettings holds the recognized per-check options.
type CheckSettings struct {
	// GitRepositoryName enables the git repository naming check.
	// Disabled by default.
	GitRepositoryName bool `yaml:"git_repository_name"`
}

// ProjectConfig is the extcheck.yaml document.
type ProjectConfig struct {
	Checks CheckSettings `yaml:"checks"`
}

const ConfigFileName = "extcheck.yaml"

// EnvCheckGitRepositoryName overrides the repository name check setting
// from the environment. Accepted truthy values: 1, true, on, yes.
const EnvCheckGitRepositoryName = "EXTCHECK_CHECK_GIT_REPOSITORY_NAME"

// Load reads extcheck.yaml from the given directory.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GitRepositoryNameEnabled resolves the effective setting for the
// repository name check. flagChanged reports whether the CLI flag was
// set explicitly; an explicit flag always wins, then the environment,
// then the config file, then the default (disabled).
func GitRepositoryNameEnabled(cfg *ProjectConfig, flagChanged, flagValue bool) bool {
	if flagChanged {
		return flagValue
	}
	if value, ok := boolFromEnv(EnvCheckGitRepositoryName); ok {
		return value
	}
	if cfg != nil {
		return cfg.Checks.GitRepositoryName
	}
	return false
}

// boolFromEnv reads a boolean environment variable. The second return
// value reports whether the variable held a recognized value.
func boolFromEnv(name string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(name))) {
	case "1", "true", "on", "yes":
		return true, true
	case "0", "false", "off", "no":
		return false, true
	default:
		return false, false
	}
}
