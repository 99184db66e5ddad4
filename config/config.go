// Package config loads the iconforge.toml project file and wires up the
// variant store backend it names.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/kastheco/iconforge/variants"
)

// Config is the project configuration, read from iconforge.toml.
type Config struct {
	// Library is the directory of SVG sources. Its base name doubles as the
	// library key when talking to a shared store.
	Library string       `toml:"library"`
	Store   StoreConfig  `toml:"store"`
	Filter  FilterConfig `toml:"filter"`
}

// StoreConfig selects where variant profiles persist.
type StoreConfig struct {
	// Backend is "file" (variants.json next to the icons) or "http"
	// (a shared iconforge serve instance).
	Backend string `toml:"backend"`
	URL     string `toml:"url"`
}

// FilterConfig holds the step sizes the interactive surface uses when
// nudging filter values.
type FilterConfig struct {
	HueStep        int `toml:"hue_step"`
	SaturationStep int `toml:"saturation_step"`
	BrightnessStep int `toml:"brightness_step"`
}

// Default returns the configuration used when no iconforge.toml exists.
func Default() *Config {
	return &Config{
		Library: ".",
		Store:   StoreConfig{Backend: "file"},
		Filter:  FilterConfig{HueStep: 5, SaturationStep: 5, BrightnessStep: 5},
	}
}

// Load reads the config at path. A missing file yields Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// OpenStore constructs the variant store the config names.
func (c *Config) OpenStore() (variants.Store, error) {
	switch c.Store.Backend {
	case "", "file":
		return variants.NewFileStore(c.Library)
	case "http":
		if c.Store.URL == "" {
			return nil, errors.New("store backend is http but no url is set")
		}
		return variants.NewHTTPStore(c.Store.URL), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", c.Store.Backend)
	}
}
