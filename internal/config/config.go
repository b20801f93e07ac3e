// Package config loads the host-owned settings of the color picker service.
//
// Settings come from an optional TOML file and are then overlaid by
// environment variables:
//
//	log_level = "info"
//
//	[color_picker]
//	rgba = false
//	hexa = false
//	hsla = false
//
//	[loupe]
//	radius = 5
//	zoom = 8
//
// The resulting Config is passed explicitly to the components that need it;
// nothing in the service reads settings from global state.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"

	"github.com/ironsheep/colorpick-mcp/internal/imaging"
	"github.com/ironsheep/colorpick-mcp/internal/picker"
)

// Environment variables read by ApplyEnv.
const (
	EnvConfigPath = "COLORPICK_CONFIG"
	EnvLogLevel   = "COLORPICK_LOG_LEVEL"
	EnvRGBA       = "COLORPICK_RGBA"
	EnvHEXA       = "COLORPICK_HEXA"
	EnvHSLA       = "COLORPICK_HSLA"
)

// Config is the complete service configuration.
type Config struct {
	LogLevel string         `toml:"log_level" json:"log_level"`
	Picker   picker.Options `toml:"color_picker" json:"color_picker"`
	Loupe    Loupe          `toml:"loupe" json:"loupe"`
}

// Loupe holds the defaults for the magnified view.
type Loupe struct {
	Radius int `toml:"radius" json:"radius"`
	Zoom   int `toml:"zoom" json:"zoom"`
}

// Default returns the built-in configuration: plain RGB/HEX/HSL read-outs
// and an 11x11 loupe at 8x.
func Default() Config {
	return Config{
		LogLevel: "info",
		Loupe:    Loupe{Radius: 5, Zoom: 8},
	}
}

// Load reads the TOML file at path on top of Default. An empty path returns
// the defaults. Unknown keys are rejected so typos do not silently fall back
// to defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// ApplyEnv overlays settings from the environment. lookup is usually
// os.LookupEnv; a nil lookup uses it.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}

	flags := []struct {
		key string
		dst *bool
	}{
		{EnvRGBA, &c.Picker.RGBA},
		{EnvHEXA, &c.Picker.HEXA},
		{EnvHSLA, &c.Picker.HSLA},
	}
	for _, f := range flags {
		v, ok := lookup(f.key)
		if !ok || v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", f.key, err)
		}
		*f.dst = b
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if c.Loupe.Radius < 1 || c.Loupe.Radius > imaging.MaxLoupeRadius {
		errs = append(errs, fmt.Errorf("loupe.radius %d outside 1-%d", c.Loupe.Radius, imaging.MaxLoupeRadius))
	}
	if c.Loupe.Zoom < 1 || c.Loupe.Zoom > imaging.MaxLoupeZoom {
		errs = append(errs, fmt.Errorf("loupe.zoom %d outside 1-%d", c.Loupe.Zoom, imaging.MaxLoupeZoom))
	}
	return errors.Join(errs...)
}

// Level returns the zerolog level for LogLevel, falling back to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
