// Package config loads the two configuration layers used by rchan: the
// global config.toml with build settings, and the per-package rchan.yaml
// declaration naming the remote PKGBUILD to track.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the global application configuration.
type Config struct {
	Build BuildConfig `toml:"build"`
}

// BuildConfig holds settings for the build subcommand.
type BuildConfig struct {
	// Command is the packaging command to invoke (default: makepkg)
	Command string `toml:"command"`
	// Args are the arguments passed to the command
	// (default: -s --noconfirm, i.e. sync deps, no interactive prompts)
	Args []string `toml:"args"`
	// BuildDir is the scratch build area name under the base directory
	BuildDir string `toml:"build_dir"`
	// PkgsDir is the output collection area name under the base directory
	PkgsDir string `toml:"pkgs_dir"`
	// ArtifactSuffix matches produced package archives by filename
	ArtifactSuffix string `toml:"artifact_suffix"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Build: BuildConfig{
			Command:        "makepkg",
			Args:           []string{"-s", "--noconfirm"},
			BuildDir:       "build",
			PkgsDir:        "pkgs",
			ArtifactSuffix: ".pkg.tar.zst",
		},
	}
}

// ConfigPath returns the global config file path, following XDG conventions.
func ConfigPath() (string, error) {
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		xdgConfig = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgConfig, "rchan", "config.toml"), nil
}

// Load reads the global configuration, falling back to defaults when no
// config file exists. A malformed config file is an error; rchan never
// writes the file itself.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads configuration from a specific file path.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	// Fields left empty in the file keep their defaults
	defaults := DefaultConfig()
	if cfg.Build.Command == "" {
		cfg.Build.Command = defaults.Build.Command
	}
	if cfg.Build.Args == nil {
		cfg.Build.Args = defaults.Build.Args
	}
	if cfg.Build.BuildDir == "" {
		cfg.Build.BuildDir = defaults.Build.BuildDir
	}
	if cfg.Build.PkgsDir == "" {
		cfg.Build.PkgsDir = defaults.Build.PkgsDir
	}
	if cfg.Build.ArtifactSuffix == "" {
		cfg.Build.ArtifactSuffix = defaults.Build.ArtifactSuffix
	}

	return cfg, nil
}
