// Package config persists CLI defaults across invocations, following the
// teacher's backup.Config struct shape: a flat struct of optional
// (*bool/*int/*string) fields with getter-with-default methods, so a
// zero-value Config (no file on disk yet) behaves like sensible
// defaults rather than all-zero.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config keeps persisted CLI defaults for the plan/apply/show
// subcommands. Optional pointer fields distinguish "never set" from
// "explicitly set to the zero value", mirroring the teacher's Config.
type Config struct {
	MinSpace      *string `toml:"min_space"`
	MinFileSize   *string `toml:"min_file_size"`
	PathFilter    *string `toml:"path_filter"`
	Concurrency   *int    `toml:"concurrency"`
	PlanFile      *string `toml:"plan_file"`
	Debug         *bool   `toml:"debug"`
	Interactive   *bool   `toml:"interactive"`
}

func (conf *Config) minSpace() string {
	if conf.MinSpace != nil {
		return *conf.MinSpace
	}
	return "50MB"
}

func (conf *Config) minFileSize() string {
	if conf.MinFileSize != nil {
		return *conf.MinFileSize
	}
	return "1MB"
}

func (conf *Config) pathFilter() string {
	if conf.PathFilter != nil {
		return *conf.PathFilter
	}
	return ""
}

func (conf *Config) concurrency() int {
	if conf.Concurrency != nil {
		return *conf.Concurrency
	}
	return 4
}

func (conf *Config) planFile() string {
	if conf.PlanFile != nil {
		return *conf.PlanFile
	}
	return "/config/plan.sh"
}

func (conf *Config) debugEnabled() bool {
	if conf.Debug != nil {
		return *conf.Debug
	}
	return false
}

func (conf *Config) interactiveEnabled() bool {
	if conf.Interactive != nil {
		return *conf.Interactive
	}
	return true
}

// DefaultPath returns the default config.toml location under the user's
// home directory, ~/.config/unraid-binpack/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "unraid-binpack", "config.toml"), nil
}

// Load reads Config from path. A missing file is not an error: it
// returns a zero-value Config so all the getter methods above fall
// back to their defaults.
func Load(path string) (*Config, error) {
	var conf Config
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &conf, nil
	}
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Save writes conf to path as TOML, creating parent directories as
// needed.
func Save(path string, conf *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(conf)
}
