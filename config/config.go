// Package config loads the settings shared by provider driver processes.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/zhangi/octavia-lib/agent"
)

// Configuration aggregates the process settings. YAML is the primary format,
// files ending in .toml are accepted for older deployments.
type Configuration struct {
	Core  CoreConfig   `yaml:"core" toml:"core"`
	Agent agent.Config `yaml:"agent" toml:"agent"`
}

// CoreConfig carries the process wide settings
type CoreConfig struct {
	LogLevel string `yaml:"logLevel" toml:"logLevel"`
	LogFile  string `yaml:"logFile" toml:"logFile"`
}

// Default returns the configuration used when no file is given. File values
// overlay these defaults.
func Default() Configuration {
	return Configuration{
		Core: CoreConfig{
			LogLevel: "info",
			LogFile:  "stdout",
		},
		Agent: agent.DefaultConfig(),
	}
}

// ReadConfig loads a configuration file, picking the format from the file
// extension.
func ReadConfig(file string) (*Configuration, error) {
	cfg := Default()
	if filepath.Ext(file) == ".toml" {
		if _, err := toml.DecodeFile(file, &cfg); err != nil {
			return nil, errors.Wrapf(err, "could not read %s", file)
		}
		return &cfg, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", file)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "could not parse %s", file)
	}
	return &cfg, nil
}
