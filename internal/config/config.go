// Package config loads brandlint settings from an optional YAML file with
// environment overrides. Precedence: flags > environment > file > defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the config file looked up when --config is not given.
const DefaultFile = ".brandlint.yaml"

// Config holds every tunable of a validation run.
type Config struct {
	Root             string   `yaml:"root" env:"BRANDLINT_ROOT"`
	MetaFile         string   `yaml:"meta_file" env:"BRANDLINT_META_FILE"`
	BannersDir       string   `yaml:"banners_dir" env:"BRANDLINT_BANNERS_DIR"`
	IconsDir         string   `yaml:"icons_dir" env:"BRANDLINT_ICONS_DIR"`
	DescriptionLimit int      `yaml:"description_limit" env:"BRANDLINT_DESCRIPTION_LIMIT"`
	Ignore           []string `yaml:"ignore" env:"BRANDLINT_IGNORE"`
	FailOnWarn       bool     `yaml:"fail_on_warn" env:"BRANDLINT_FAIL_ON_WARN"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Root:             "events",
		MetaFile:         "meta.md",
		BannersDir:       "banners",
		IconsDir:         "server_icons",
		DescriptionLimit: 2048,
	}
}

// Load reads path when it exists, then applies environment overrides.
// Unknown file keys are rejected to catch typos early.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Defaults apply.
	default:
		return Config{}, err
	}

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Root == "" {
		return errors.New("root must not be empty")
	}
	if c.MetaFile == "" {
		return errors.New("meta_file must not be empty")
	}
	if c.BannersDir == "" || c.IconsDir == "" {
		return errors.New("asset directory names must not be empty")
	}
	if c.DescriptionLimit <= 0 {
		return fmt.Errorf("description_limit must be positive, got %d", c.DescriptionLimit)
	}
	return nil
}
