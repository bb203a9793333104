package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatOf picks the format from a file extension. Anything that is not
// .toml is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// Load loads the Penguin Jump configuration.
// Search order: customPath -> ~/.penguin/configs/penguin.{yaml,toml} ->
// ./configs/penguin.yaml -> embedded default -> DefaultConfig.
//
// Files are decoded over DefaultConfig, so a file only needs the keys it
// changes.
func Load(customPath string) (PenguinConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Decode(data, FormatOf(customPath))
		if err != nil {
			return DefaultConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, name := range []string{"penguin.yaml", "penguin.toml"} {
		if path := userConfigPath(name); path != "" {
			if cfg, ok := tryFile(path); ok {
				return cfg, nil
			}
		}
	}

	if cfg, ok := tryFile(filepath.Join("configs", "penguin.yaml")); ok {
		return cfg, nil
	}

	cfg, err := Decode(defaultPenguinYAML, FormatYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryFile(path string) (PenguinConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PenguinConfig{}, false
	}
	cfg, err := Decode(data, FormatOf(path))
	if err != nil {
		return PenguinConfig{}, false
	}
	return cfg, true
}

// Decode parses data over DefaultConfig and validates the result.
func Decode(data []byte, format Format) (PenguinConfig, error) {
	cfg := DefaultConfig()
	var err error
	switch format {
	case FormatTOML:
		_, err = toml.Decode(string(data), &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Encode writes cfg to w in the given format.
func Encode(w io.Writer, cfg PenguinConfig, format Format) error {
	switch format {
	case FormatTOML:
		return toml.NewEncoder(w).Encode(cfg)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown config format %q", format)
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c PenguinConfig) Validate() error {
	var errs []error
	if c.Physics.AirTime <= 0 {
		errs = append(errs, errors.New("physics.air_time must be positive"))
	}
	if c.Platforms.Spacing <= 0 {
		errs = append(errs, errors.New("platforms.spacing must be positive"))
	}
	if c.Platforms.MinWidth <= 0 || c.Platforms.MaxWidth < c.Platforms.MinWidth {
		errs = append(errs, errors.New("platforms width range is invalid"))
	}
	if c.Platforms.MinHeight <= 0 || c.Platforms.MaxHeight < c.Platforms.MinHeight {
		errs = append(errs, errors.New("platforms height range is invalid"))
	}
	if c.Storm.TransitionDuration <= 0 || c.Storm.Duration <= c.Storm.TransitionDuration {
		errs = append(errs, errors.New("storm.duration must exceed storm.transition_duration > 0"))
	}
	if c.Spawn.CoinOdds <= 0 {
		errs = append(errs, errors.New("spawn.coin_odds must be positive"))
	}
	if c.Charge.Capacity <= 0 {
		errs = append(errs, errors.New("charge.capacity must be positive"))
	}
	if c.Render.UnitsPerColumn <= 0 || c.Render.UnitsPerRow <= 0 {
		errs = append(errs, errors.New("render units must be positive"))
	}
	if c.Difficulty.Base <= 0 || c.Difficulty.Base >= 1 {
		errs = append(errs, errors.New("difficulty.base must be in (0, 1)"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".penguin", "configs", filename)
}
