package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

var ErrInvalid = errors.New("config: invalid")

// Load reads the configuration.
// Search order: customPath -> ~/.platformer/config.yaml -> ./configs/config.yaml -> embedded default
//
// Files are decoded over Default, so a file only needs the keys it changes.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if p := userConfigPath("config.yaml"); p != "" {
		if data, err := os.ReadFile(p); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "config.yaml")); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values the game cannot run without.
func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Screen.TickRate <= 0:
		return fmt.Errorf("%w: tick rate %d", ErrInvalid, c.Screen.TickRate)
	case len(c.Levels.Sequence) == 0:
		return fmt.Errorf("%w: empty level sequence", ErrInvalid)
	case c.Levels.Start != "" && !slices.Contains(c.Levels.Sequence, c.Levels.Start):
		return fmt.Errorf("%w: start level %q not in sequence", ErrInvalid, c.Levels.Start)
	case c.Camera.Zoom <= 0:
		return fmt.Errorf("%w: camera zoom %v", ErrInvalid, c.Camera.Zoom)
	}
	return nil
}

// TickSeconds is the fixed step length.
func (c Config) TickSeconds() float64 {
	return 1 / float64(c.Screen.TickRate)
}

// NextLevel is the map after name in the sequence, wrapping to the first.
// Names not in the sequence also restart it.
func (c Config) NextLevel(name string) string {
	i := slices.Index(c.Levels.Sequence, name)
	if i < 0 || i == len(c.Levels.Sequence)-1 {
		return c.Levels.Sequence[0]
	}
	return c.Levels.Sequence[i+1]
}

// userConfigPath returns the path to the user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", filename)
}
